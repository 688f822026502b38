package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"servicehub_backend/internal/models"
	"servicehub_backend/internal/repositories"
	"servicehub_backend/internal/wizard"
	"servicehub_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JobStore interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id string) (*models.Job, error)
	Update(ctx context.Context, job *models.Job) error
	UpdateStatus(ctx context.Context, id string, status models.JobStatus, reason *string) error
	Delete(ctx context.Context, id string) error
	BulkUpdateStatus(ctx context.Context, ids []string, status models.JobStatus) (int64, error)
	BulkDelete(ctx context.Context, ids []string) (int64, error)
	List(ctx context.Context, filters repositories.JobFilters) ([]models.Job, int64, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Job, error)
}

type JobService struct {
	jobs     JobStore
	guard    *ActionGuard
	notifier *NotificationService
}

func NewJobService(jobs JobStore, guard *ActionGuard, notifier *NotificationService) *JobService {
	return &JobService{jobs: jobs, guard: guard, notifier: notifier}
}

// CreateFromRequest persists a wizard submission as a new open job.
func (s *JobService) CreateFromRequest(ctx context.Context, customerID string, req *wizard.JobRequest) (*models.Job, error) {
	if req.Budget < 0 {
		return nil, apperrors.ErrInvalidBudget
	}
	job := &models.Job{
		CustomerID:   customerID,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Subcategory:  req.Subcategory,
		Budget:       req.Budget,
		BudgetType:   req.BudgetType,
		Status:       models.JobStatusOpen,
		Priority:     req.Priority,
		Location:     req.Location,
		IsRemote:     req.IsRemote,
		Deadline:     req.Deadline,
		Requirements: mustJSON(req.Requirements),
		Tags:         mustJSON(req.Tags),
		Images:       mustJSON(req.Images),
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to create job", 500)
	}
	s.notifier.NotifyJobCreated(ctx, customerID, job.Title)
	return job, nil
}

// UpdateFromRequest applies a wizard edit-mode submission to the existing
// job. The job's status and vendor assignment are not touched.
func (s *JobService) UpdateFromRequest(ctx context.Context, customerID string, req *wizard.JobRequest) (*models.Job, error) {
	job, err := s.getOwned(ctx, customerID, req.JobID)
	if err != nil {
		return nil, err
	}
	if req.Budget < 0 {
		return nil, apperrors.ErrInvalidBudget
	}

	job.Title = req.Title
	job.Description = req.Description
	job.Category = req.Category
	job.Subcategory = req.Subcategory
	job.Budget = req.Budget
	job.BudgetType = req.BudgetType
	job.Priority = req.Priority
	job.Location = req.Location
	job.IsRemote = req.IsRemote
	job.Deadline = req.Deadline
	job.Requirements = mustJSON(req.Requirements)
	job.Tags = mustJSON(req.Tags)
	if len(req.Images) > 0 {
		job.Images = mustJSON(req.Images)
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to update job", 500)
	}
	return job, nil
}

func (s *JobService) GetJob(ctx context.Context, id string) (*models.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobService) List(ctx context.Context, filters repositories.JobFilters) ([]models.Job, int64, error) {
	return s.jobs.List(ctx, filters)
}

// UpdateStatus performs one whitelisted transition. The target row is
// guarded against concurrent actions; on any failure the stored status is
// untouched and the guard released.
func (s *JobService) UpdateStatus(ctx context.Context, actor *models.User, jobID string, status models.JobStatus, reason string) error {
	if err := s.guard.Begin("job", jobID); err != nil {
		return err
	}
	defer s.guard.End("job", jobID)

	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && job.CustomerID != actor.ID {
		return apperrors.ErrInsufficientPermissions
	}
	// Dispute resolution is an admin decision.
	if job.Status == models.JobStatusDisputed && !actor.IsAdmin() {
		return apperrors.ErrInsufficientPermissions
	}
	if !models.CanTransitionJob(job.Status, status) {
		return apperrors.ErrInvalidStatus("job",
			fmt.Sprintf("Cannot move job from %s to %s", job.Status, status))
	}

	var reasonPtr *string
	if reason != "" {
		reasonPtr = &reason
	}
	if err := s.jobs.UpdateStatus(ctx, jobID, status, reasonPtr); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to update job status", 500)
	}
	return nil
}

func (s *JobService) Delete(ctx context.Context, actor *models.User, jobID, reason string) error {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && job.CustomerID != actor.ID {
		return apperrors.ErrInsufficientPermissions
	}
	if err := s.jobs.Delete(ctx, jobID); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to delete job", 500)
	}
	return nil
}

// BulkUpdateStatus applies the transition to every listed job for which it
// is legal and reports how many were changed. Illegal transitions are
// skipped, not errors: bulk actions are best-effort per row.
func (s *JobService) BulkUpdateStatus(ctx context.Context, ids []string, status models.JobStatus) (int64, error) {
	allowed := make([]string, 0, len(ids))
	for _, id := range ids {
		job, err := s.jobs.GetByID(ctx, id)
		if err != nil {
			continue
		}
		if models.CanTransitionJob(job.Status, status) {
			allowed = append(allowed, id)
		}
	}
	if len(allowed) == 0 {
		return 0, nil
	}
	return s.jobs.BulkUpdateStatus(ctx, allowed, status)
}

func (s *JobService) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	return s.jobs.BulkDelete(ctx, ids)
}

// Export renders the filtered job list as JSON or CSV.
func (s *JobService) Export(ctx context.Context, format string, filters repositories.JobFilters) ([]byte, string, error) {
	jobs, _, err := s.jobs.List(ctx, filters)
	if err != nil {
		return nil, "", apperrors.Wrap(err, apperrors.CodeDatabaseError, "job", "Failed to export jobs", 500)
	}

	switch format {
	case "", "json":
		data, err := json.MarshalIndent(jobs, "", "  ")
		if err != nil {
			return nil, "", apperrors.InternalError(err)
		}
		return data, "application/json", nil
	case "csv":
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		_ = w.Write([]string{"id", "title", "category", "subcategory", "status", "budget", "location", "created_at"})
		for _, j := range jobs {
			_ = w.Write([]string{
				j.ID, j.Title, j.Category, j.Subcategory, string(j.Status),
				strconv.FormatFloat(j.Budget, 'f', 2, 64), j.Location,
				j.CreatedAt.Format(time.RFC3339),
			})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, "", apperrors.InternalError(err)
		}
		return buf.Bytes(), "text/csv", nil
	default:
		return nil, "", apperrors.NewBadRequestError("Unsupported export format: " + format)
	}
}

func (s *JobService) getOwned(ctx context.Context, customerID, jobID string) (*models.Job, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.CustomerID != customerID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return job, nil
}

func mustJSON(v interface{}) datatypes.JSON {
	data, err := json.Marshal(v)
	if err != nil || string(data) == "null" {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(data)
}
