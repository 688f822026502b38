package services

import (
	"context"

	"servicehub_backend/internal/logger"
	"servicehub_backend/internal/models"
	"servicehub_backend/internal/services/dto"
	"servicehub_backend/internal/wizard"
	"servicehub_backend/pkg/apperrors"
)

type wizardUserLookup interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type wizardJobLookup interface {
	GetJob(ctx context.Context, id string) (*models.Job, error)
	CreateFromRequest(ctx context.Context, customerID string, req *wizard.JobRequest) (*models.Job, error)
	UpdateFromRequest(ctx context.Context, customerID string, req *wizard.JobRequest) (*models.Job, error)
}

// WizardService runs the job posting wizard: one draft per user per
// session, stepped through the gates, submitted atomically at the end.
type WizardService struct {
	drafts   wizard.DraftStore
	previews wizard.Previewer
	jobs     wizardJobLookup
	users    wizardUserLookup
	notifier *NotificationService
}

func NewWizardService(drafts wizard.DraftStore, previews wizard.Previewer, jobs wizardJobLookup, users wizardUserLookup, notifier *NotificationService) *WizardService {
	return &WizardService{
		drafts:   drafts,
		previews: previews,
		jobs:     jobs,
		users:    users,
		notifier: notifier,
	}
}

// Start opens a wizard draft. With a job id it enters edit mode: the
// draft is pre-filled from the stored job and submission will update it.
func (s *WizardService) Start(ctx context.Context, userID, jobID string) (*wizard.Draft, error) {
	var draft *wizard.Draft

	if jobID == "" {
		draft = wizard.NewDraft(userID)
	} else {
		job, err := s.jobs.GetJob(ctx, jobID)
		if err != nil {
			return nil, err
		}
		if job.CustomerID != userID {
			return nil, apperrors.ErrInsufficientPermissions
		}
		user, err := s.users.FindByID(ctx, userID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		draft = wizard.DraftFromJob(userID, job, user.FirstName, user.LastName, user.Phone)
	}

	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return draft, nil
}

func (s *WizardService) Get(ctx context.Context, userID, draftID string) (*wizard.Draft, error) {
	return s.drafts.Get(ctx, userID, draftID)
}

// Update applies a partial field patch to the draft. Patching never runs a
// gate; validation happens on advance and submit.
func (s *WizardService) Update(ctx context.Context, userID, draftID string, req *dto.UpdateDraftRequest) (*wizard.Draft, error) {
	draft, err := s.drafts.Get(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}

	applyPatch(draft, req)

	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return draft, nil
}

func (s *WizardService) SelectCategory(ctx context.Context, userID, draftID, category, serviceType string) (*wizard.Draft, error) {
	draft, err := s.drafts.Get(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	if err := draft.SelectCategory(category, serviceType); err != nil {
		return nil, err
	}
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return draft, nil
}

// Advance runs the current step's gate. On a gate failure the stored
// draft keeps its step and records the error.
func (s *WizardService) Advance(ctx context.Context, userID, draftID string) (*wizard.Draft, error) {
	draft, err := s.drafts.Get(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	advanceErr := draft.Advance()
	if saveErr := s.drafts.Save(ctx, draft); saveErr != nil {
		return nil, apperrors.InternalError(saveErr)
	}
	if advanceErr != nil {
		return draft, advanceErr
	}
	return draft, nil
}

// Back steps backwards. Backing out of step 1 exits the wizard entirely:
// the draft is torn down and its previews released.
func (s *WizardService) Back(ctx context.Context, userID, draftID string) (draft *wizard.Draft, exited bool, err error) {
	draft, err = s.drafts.Get(ctx, userID, draftID)
	if err != nil {
		return nil, false, err
	}
	if draft.Back() {
		s.teardown(ctx, draft)
		return nil, true, nil
	}
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, false, apperrors.InternalError(err)
	}
	return draft, false, nil
}

func (s *WizardService) AttachImages(ctx context.Context, userID, draftID string, names []string) (*wizard.Draft, error) {
	draft, err := s.drafts.Get(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	attachErr := draft.AttachImages(ctx, s.previews, names...)
	if saveErr := s.drafts.Save(ctx, draft); saveErr != nil {
		return nil, apperrors.InternalError(saveErr)
	}
	if attachErr != nil {
		return draft, attachErr
	}
	return draft, nil
}

func (s *WizardService) RemoveImage(ctx context.Context, userID, draftID, imageID string) (*wizard.Draft, error) {
	draft, err := s.drafts.Get(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	if err := draft.RemoveImage(ctx, s.previews, imageID); err != nil {
		return nil, err
	}
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return draft, nil
}

// Submit builds the job request and dispatches it: create in create mode,
// update keyed by the job id in edit mode. A failed submission leaves the
// draft on its current step with the error recorded; nothing entered is
// lost. On success the draft is deleted and its previews become the job's
// images.
func (s *WizardService) Submit(ctx context.Context, userID, draftID string) (*models.Job, error) {
	draft, err := s.drafts.Get(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}

	req, err := draft.BuildRequest()
	if err != nil {
		_ = s.drafts.Save(ctx, draft)
		return nil, err
	}

	var job *models.Job
	if draft.JobID == "" {
		job, err = s.jobs.CreateFromRequest(ctx, userID, req)
	} else {
		job, err = s.jobs.UpdateFromRequest(ctx, userID, req)
	}
	if err != nil {
		draft.RecordFailure(err)
		_ = s.drafts.Save(ctx, draft)
		return nil, err
	}

	// Preview ownership moved to the job; only the draft record goes.
	if err := s.drafts.Delete(ctx, userID, draftID); err != nil {
		logger.CtxWarn(ctx, "failed to delete submitted draft", "draft_id", draftID, "error", err.Error())
	}
	return job, nil
}

// Cancel tears the wizard down without submitting.
func (s *WizardService) Cancel(ctx context.Context, userID, draftID string) error {
	draft, err := s.drafts.Get(ctx, userID, draftID)
	if err != nil {
		return err
	}
	s.teardown(ctx, draft)
	return nil
}

func (s *WizardService) teardown(ctx context.Context, draft *wizard.Draft) {
	draft.Close(ctx, s.previews)
	if err := s.drafts.Delete(ctx, draft.UserID, draft.ID); err != nil {
		logger.CtxWarn(ctx, "failed to delete draft on teardown", "draft_id", draft.ID, "error", err.Error())
	}
}

func applyPatch(draft *wizard.Draft, req *dto.UpdateDraftRequest) {
	if req.Title != nil {
		draft.Title = *req.Title
	}
	if req.Description != nil {
		draft.Description = *req.Description
	}
	if req.FirstName != nil {
		draft.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		draft.LastName = *req.LastName
	}
	if req.ContactPreference != nil {
		draft.ContactPreference = *req.ContactPreference
	}
	if req.PhoneNumber != nil {
		draft.PhoneNumber = *req.PhoneNumber
	}
	if req.Street != nil {
		draft.Street = *req.Street
	}
	if req.City != nil {
		draft.City = *req.City
	}
	if req.State != nil {
		draft.State = *req.State
	}
	if req.ZipCode != nil {
		draft.ZipCode = *req.ZipCode
	}
	if req.Budget != nil {
		draft.Budget = *req.Budget
	}
	if req.BudgetType != nil {
		draft.BudgetType = *req.BudgetType
	}
	if req.Deadline != nil {
		draft.Deadline = req.Deadline
	}
	if req.Priority != nil {
		draft.Priority = *req.Priority
	}
	if req.IsRemote != nil {
		draft.IsRemote = *req.IsRemote
	}
	if req.Requirements != nil {
		draft.Requirements = *req.Requirements
	}
	if req.Tags != nil {
		draft.Tags = *req.Tags
	}
}
