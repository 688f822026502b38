package dto

import (
	"time"

	"servicehub_backend/internal/models"
)

type StartWizardRequest struct {
	// JobID switches the wizard into edit mode: the draft is pre-filled
	// from the existing job.
	JobID string `json:"jobId"`
}

// UpdateDraftRequest is a partial patch: only non-nil fields are applied.
type UpdateDraftRequest struct {
	Title             *string             `json:"title"`
	Description       *string             `json:"description"`
	FirstName         *string             `json:"firstName"`
	LastName          *string             `json:"lastName"`
	ContactPreference *string             `json:"contactPreference" validate:"omitempty,oneof=email phone"`
	PhoneNumber       *string             `json:"phoneNumber"`
	Street            *string             `json:"street"`
	City              *string             `json:"city"`
	State             *string             `json:"state"`
	ZipCode           *string             `json:"zipCode"`
	Budget            *string             `json:"budget"`
	BudgetType        *models.BudgetType  `json:"budgetType" validate:"omitempty,is-budget-type"`
	Deadline          *time.Time          `json:"deadline"`
	Priority          *models.JobPriority `json:"priority" validate:"omitempty,is-priority"`
	IsRemote          *bool               `json:"isRemote"`
	Requirements      *[]string           `json:"requirements"`
	Tags              *[]string           `json:"tags"`
}

type SelectCategoryRequest struct {
	Category    string `json:"category" validate:"required"`
	ServiceType string `json:"serviceType" validate:"required"`
}

type AttachImagesRequest struct {
	Names []string `json:"names" validate:"required,min=1"`
}
