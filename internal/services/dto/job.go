package dto

import "servicehub_backend/internal/models"

type UpdateJobStatusRequest struct {
	Status models.JobStatus `json:"status" validate:"required,is-job-status"`
	Reason string           `json:"reason"`
}

type BulkJobStatusRequest struct {
	IDs    []string         `json:"ids" validate:"required,min=1"`
	Status models.JobStatus `json:"status" validate:"required,is-job-status"`
}

type BulkJobDeleteRequest struct {
	IDs    []string `json:"ids" validate:"required,min=1"`
	Reason string   `json:"reason"`
}

type JobListResponse struct {
	Jobs  []models.Job `json:"jobs"`
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Pages int64        `json:"pages"`
}
