package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"servicehub_backend/internal/models"
	"servicehub_backend/internal/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeJobDispatcher stands in for the job service on wizard submission.
type fakeJobDispatcher struct {
	createErr error
	updateErr error
	created   []*wizard.JobRequest
	updated   []*wizard.JobRequest
	jobs      map[string]*models.Job
}

func newFakeJobDispatcher() *fakeJobDispatcher {
	return &fakeJobDispatcher{jobs: map[string]*models.Job{}}
}

func (f *fakeJobDispatcher) GetJob(_ context.Context, id string) (*models.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, errors.New("job not found")
	}
	return j, nil
}

func (f *fakeJobDispatcher) CreateFromRequest(_ context.Context, customerID string, req *wizard.JobRequest) (*models.Job, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	job := &models.Job{CustomerID: customerID, Title: req.Title, Status: models.JobStatusOpen}
	job.ID = "job-new"
	return job, nil
}

func (f *fakeJobDispatcher) UpdateFromRequest(_ context.Context, customerID string, req *wizard.JobRequest) (*models.Job, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = append(f.updated, req)
	job := &models.Job{CustomerID: customerID, Title: req.Title}
	job.ID = req.JobID
	return job, nil
}

// countingPreviewer tracks live previews across the wizard lifecycle.
type countingPreviewer struct {
	acquired int
	live     map[string]bool
}

func newCountingPreviewer() *countingPreviewer {
	return &countingPreviewer{live: map[string]bool{}}
}

func (p *countingPreviewer) AcquirePreview(_ context.Context, draftID, name string) (string, error) {
	p.acquired++
	ref := fmt.Sprintf("/previews/%s/%s", draftID, name)
	p.live[ref] = true
	return ref, nil
}

func (p *countingPreviewer) ReleasePreview(_ context.Context, ref string) error {
	delete(p.live, ref)
	return nil
}

func newTestWizardService(jobs wizardJobLookup, previews wizard.Previewer) *WizardService {
	users := &fakeUserLookup{users: map[string]*models.User{
		"cust-1": newUser("cust-1", models.UserRoleCustomer),
	}}
	return NewWizardService(wizard.NewMemoryDraftStore(), previews, jobs, users, newTestNotifier())
}

func TestWizardSubmitCreateMode(t *testing.T) {
	t.Parallel()

	jobs := newFakeJobDispatcher()
	svc := newTestWizardService(jobs, newCountingPreviewer())
	ctx := context.Background()

	draft, err := svc.Start(ctx, "cust-1", "")
	require.NoError(t, err)

	draft.Title = "Fix leaking kitchen sink"
	draft.Description = "The sink drips constantly"
	draft.ServiceCategory = "Home Maintenance and Repairs"
	draft.ServiceType = "Plumbing"
	draft.FirstName = "Pat"
	draft.LastName = "Doe"
	draft.Street = "1 Elm St"
	draft.City = "Springfield"
	draft.ZipCode = "00501"
	draft.Budget = "150"
	require.NoError(t, svc.drafts.Save(ctx, draft))

	job, err := svc.Submit(ctx, "cust-1", draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "job-new", job.ID)
	require.Len(t, jobs.created, 1)
	assert.Empty(t, jobs.created[0].JobID)

	// The draft is gone after a successful submission.
	_, err = svc.Get(ctx, "cust-1", draft.ID)
	assert.ErrorIs(t, err, wizard.ErrDraftNotFound)
}

func TestWizardSubmitFailureKeepsDraft(t *testing.T) {
	t.Parallel()

	jobs := newFakeJobDispatcher()
	jobs.createErr = errors.New("backend rejected the job")
	svc := newTestWizardService(jobs, newCountingPreviewer())
	ctx := context.Background()

	draft, err := svc.Start(ctx, "cust-1", "")
	require.NoError(t, err)
	draft.Title = "Fix leaking kitchen sink"
	draft.Description = "The sink drips constantly"
	draft.Budget = "150"
	require.NoError(t, svc.drafts.Save(ctx, draft))

	_, err = svc.Submit(ctx, "cust-1", draft.ID)
	require.Error(t, err)

	// Everything entered survives, with the failure recorded.
	kept, err := svc.Get(ctx, "cust-1", draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fix leaking kitchen sink", kept.Title)
	assert.Equal(t, "150", kept.Budget)
	assert.NotEmpty(t, kept.LastError)
}

func TestWizardSubmitEditModeKeysUpdate(t *testing.T) {
	t.Parallel()

	jobs := newFakeJobDispatcher()
	existing := &models.Job{
		CustomerID:  "cust-1",
		Title:       "Repaint living room",
		Category:    "Home Maintenance and Repairs",
		Subcategory: "Painting",
		Description: "Two coats",
		Budget:      600,
		Location:    "2 Oak Ave, Springfield, Illinois 00502",
	}
	existing.ID = "job-9"
	jobs.jobs["job-9"] = existing

	svc := newTestWizardService(jobs, newCountingPreviewer())
	ctx := context.Background()

	draft, err := svc.Start(ctx, "cust-1", "job-9")
	require.NoError(t, err)
	assert.Equal(t, "job-9", draft.JobID)
	assert.Equal(t, "Repaint living room", draft.Title)

	_, err = svc.Submit(ctx, "cust-1", draft.ID)
	require.NoError(t, err)
	require.Len(t, jobs.updated, 1)
	assert.Equal(t, "job-9", jobs.updated[0].JobID)
	assert.Empty(t, jobs.created)
}

func TestWizardStartEditModeChecksOwnership(t *testing.T) {
	t.Parallel()

	jobs := newFakeJobDispatcher()
	other := &models.Job{CustomerID: "cust-2"}
	other.ID = "job-9"
	jobs.jobs["job-9"] = other

	svc := newTestWizardService(jobs, newCountingPreviewer())

	_, err := svc.Start(context.Background(), "cust-1", "job-9")
	assert.Error(t, err)
}

func TestWizardBackFromStepOneExitsAndReleasesPreviews(t *testing.T) {
	t.Parallel()

	previews := newCountingPreviewer()
	svc := newTestWizardService(newFakeJobDispatcher(), previews)
	ctx := context.Background()

	draft, err := svc.Start(ctx, "cust-1", "")
	require.NoError(t, err)
	_, err = svc.AttachImages(ctx, "cust-1", draft.ID, []string{"a.jpg", "b.jpg"})
	require.NoError(t, err)
	require.Len(t, previews.live, 2)

	_, exited, err := svc.Back(ctx, "cust-1", draft.ID)
	require.NoError(t, err)
	assert.True(t, exited)
	assert.Empty(t, previews.live)

	_, err = svc.Get(ctx, "cust-1", draft.ID)
	assert.ErrorIs(t, err, wizard.ErrDraftNotFound)
}

func TestWizardCancelReleasesPreviews(t *testing.T) {
	t.Parallel()

	previews := newCountingPreviewer()
	svc := newTestWizardService(newFakeJobDispatcher(), previews)
	ctx := context.Background()

	draft, err := svc.Start(ctx, "cust-1", "")
	require.NoError(t, err)
	_, err = svc.AttachImages(ctx, "cust-1", draft.ID, []string{"a.jpg"})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, "cust-1", draft.ID))
	assert.Empty(t, previews.live)
}

func TestWizardSubmitKeepsPreviewsForJob(t *testing.T) {
	t.Parallel()

	previews := newCountingPreviewer()
	svc := newTestWizardService(newFakeJobDispatcher(), previews)
	ctx := context.Background()

	draft, err := svc.Start(ctx, "cust-1", "")
	require.NoError(t, err)
	draft.Title = "Fix leaking kitchen sink"
	draft.Description = "The sink drips constantly"
	draft.Budget = "150"
	require.NoError(t, svc.drafts.Save(ctx, draft))
	_, err = svc.AttachImages(ctx, "cust-1", draft.ID, []string{"a.jpg"})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, "cust-1", draft.ID)
	require.NoError(t, err)

	// Preview ownership transferred to the job: nothing was released.
	assert.Len(t, previews.live, 1)
}

func TestWizardDraftIsolationBetweenUsers(t *testing.T) {
	t.Parallel()

	svc := newTestWizardService(newFakeJobDispatcher(), newCountingPreviewer())
	ctx := context.Background()

	draft, err := svc.Start(ctx, "cust-1", "")
	require.NoError(t, err)

	_, err = svc.Get(ctx, "someone-else", draft.ID)
	assert.ErrorIs(t, err, wizard.ErrDraftNotFound)
}
