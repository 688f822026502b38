package services

import (
	"context"
	"testing"

	"servicehub_backend/internal/models"
	"servicehub_backend/internal/repositories"
	"servicehub_backend/internal/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeJobStore keeps jobs in a map. It satisfies JobStore, bidJobStore and
// the wizard/dashboard job interfaces where their methods overlap.
type fakeJobStore struct {
	jobs      map[string]*models.Job
	updateErr error
	nextID    int
}

func newFakeJobStore(seed ...*models.Job) *fakeJobStore {
	s := &fakeJobStore{jobs: map[string]*models.Job{}}
	for _, j := range seed {
		s.jobs[j.ID] = j
	}
	return s
}

func (s *fakeJobStore) Create(_ context.Context, job *models.Job) error {
	s.nextID++
	if job.ID == "" {
		job.ID = "job-" + string(rune('0'+s.nextID))
	}
	copied := *job
	s.jobs[job.ID] = &copied
	return nil
}

func (s *fakeJobStore) GetByID(_ context.Context, id string) (*models.Job, error) {
	j, ok := s.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *j
	return &copied, nil
}

func (s *fakeJobStore) Update(_ context.Context, job *models.Job) error {
	copied := *job
	s.jobs[job.ID] = &copied
	return nil
}

func (s *fakeJobStore) UpdateStatus(_ context.Context, id string, status models.JobStatus, reason *string) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	j, ok := s.jobs[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	j.Status = status
	j.CancelReason = reason
	return nil
}

func (s *fakeJobStore) Delete(_ context.Context, id string) error {
	delete(s.jobs, id)
	return nil
}

func (s *fakeJobStore) BulkUpdateStatus(_ context.Context, ids []string, status models.JobStatus) (int64, error) {
	var n int64
	for _, id := range ids {
		if j, ok := s.jobs[id]; ok {
			j.Status = status
			n++
		}
	}
	return n, nil
}

func (s *fakeJobStore) BulkDelete(_ context.Context, ids []string) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := s.jobs[id]; ok {
			delete(s.jobs, id)
			n++
		}
	}
	return n, nil
}

func (s *fakeJobStore) List(_ context.Context, _ repositories.JobFilters) ([]models.Job, int64, error) {
	out := make([]models.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		out = append(out, *j)
	}
	return out, int64(len(out)), nil
}

func (s *fakeJobStore) ListByCustomer(_ context.Context, customerID string) ([]models.Job, error) {
	var out []models.Job
	for _, j := range s.jobs {
		if j.CustomerID == customerID {
			out = append(out, *j)
		}
	}
	return out, nil
}

// fakeNotificationStore records notifications in memory.
type fakeNotificationStore struct {
	created []models.Notification
}

func (s *fakeNotificationStore) Create(_ context.Context, n *models.Notification) error {
	s.created = append(s.created, *n)
	return nil
}

func (s *fakeNotificationStore) ListByUser(_ context.Context, userID string, _ int) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range s.created {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (s *fakeNotificationStore) MarkRead(_ context.Context, _, _ string) error { return nil }

func (s *fakeNotificationStore) UnreadCount(_ context.Context, _ string) (int64, error) {
	return int64(len(s.created)), nil
}

type fakeUserLookup struct {
	users map[string]*models.User
}

func (s *fakeUserLookup) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func newUser(id string, role models.UserRole) *models.User {
	u := &models.User{Role: role, Status: models.AccountStatusActive}
	u.ID = id
	return u
}

func newTestNotifier() *NotificationService {
	return NewNotificationService(&fakeNotificationStore{}, &fakeUserLookup{users: map[string]*models.User{}}, nil)
}

func seedJob(id, customerID string, status models.JobStatus) *models.Job {
	j := &models.Job{CustomerID: customerID, Title: "Fix leaking kitchen sink", Status: status}
	j.ID = id
	return j
}

func TestUpdateStatusAllowsWhitelistedTransition(t *testing.T) {
	t.Parallel()

	store := newFakeJobStore(seedJob("j1", "cust-1", models.JobStatusOpen))
	svc := NewJobService(store, NewActionGuard(), newTestNotifier())

	err := svc.UpdateStatus(context.Background(), newUser("cust-1", models.UserRoleCustomer), "j1", models.JobStatusCancelled, "changed my mind")
	require.NoError(t, err)

	job, _ := store.GetByID(context.Background(), "j1")
	assert.Equal(t, models.JobStatusCancelled, job.Status)
	require.NotNil(t, job.CancelReason)
	assert.Equal(t, "changed my mind", *job.CancelReason)
}

func TestUpdateStatusRejectsIllegalTransition(t *testing.T) {
	t.Parallel()

	store := newFakeJobStore(seedJob("j1", "cust-1", models.JobStatusOpen))
	guard := NewActionGuard()
	svc := NewJobService(store, guard, newTestNotifier())

	// OPEN -> COMPLETED is not whitelisted.
	err := svc.UpdateStatus(context.Background(), newUser("cust-1", models.UserRoleCustomer), "j1", models.JobStatusCompleted, "")
	require.Error(t, err)

	job, _ := store.GetByID(context.Background(), "j1")
	assert.Equal(t, models.JobStatusOpen, job.Status)
	// The guard is released even on failure.
	assert.False(t, guard.InFlight("job", "j1"))
}

func TestUpdateStatusFailureLeavesStoredStatus(t *testing.T) {
	t.Parallel()

	store := newFakeJobStore(seedJob("j1", "cust-1", models.JobStatusOpen))
	store.updateErr = gorm.ErrInvalidTransaction
	guard := NewActionGuard()
	svc := NewJobService(store, guard, newTestNotifier())

	err := svc.UpdateStatus(context.Background(), newUser("cust-1", models.UserRoleCustomer), "j1", models.JobStatusCancelled, "")
	require.Error(t, err)

	job, _ := store.GetByID(context.Background(), "j1")
	assert.Equal(t, models.JobStatusOpen, job.Status)
	assert.False(t, guard.InFlight("job", "j1"))

	// The same transition succeeds once the store recovers: the failed
	// attempt left nothing behind.
	store.updateErr = nil
	require.NoError(t, svc.UpdateStatus(context.Background(), newUser("cust-1", models.UserRoleCustomer), "j1", models.JobStatusCancelled, ""))
}

func TestUpdateStatusOwnership(t *testing.T) {
	t.Parallel()

	store := newFakeJobStore(seedJob("j1", "cust-1", models.JobStatusOpen))
	svc := NewJobService(store, NewActionGuard(), newTestNotifier())

	err := svc.UpdateStatus(context.Background(), newUser("cust-2", models.UserRoleCustomer), "j1", models.JobStatusCancelled, "")
	assert.Error(t, err)

	// An admin may act on any job.
	assert.NoError(t, svc.UpdateStatus(context.Background(), newUser("adm-1", models.UserRoleAdmin), "j1", models.JobStatusCancelled, ""))
}

func TestDisputeResolutionIsAdminOnly(t *testing.T) {
	t.Parallel()

	store := newFakeJobStore(seedJob("j1", "cust-1", models.JobStatusDisputed))
	svc := NewJobService(store, NewActionGuard(), newTestNotifier())

	err := svc.UpdateStatus(context.Background(), newUser("cust-1", models.UserRoleCustomer), "j1", models.JobStatusCompleted, "")
	require.Error(t, err)

	require.NoError(t, svc.UpdateStatus(context.Background(), newUser("adm-1", models.UserRoleAdmin), "j1", models.JobStatusCompleted, ""))
	job, _ := store.GetByID(context.Background(), "j1")
	assert.Equal(t, models.JobStatusCompleted, job.Status)
}

func TestBulkUpdateStatusSkipsIllegalRows(t *testing.T) {
	t.Parallel()

	store := newFakeJobStore(
		seedJob("j1", "cust-1", models.JobStatusOpen),
		seedJob("j2", "cust-1", models.JobStatusCompleted), // terminal
		seedJob("j3", "cust-1", models.JobStatusInProgress),
	)
	svc := NewJobService(store, NewActionGuard(), newTestNotifier())

	updated, err := svc.BulkUpdateStatus(context.Background(), []string{"j1", "j2", "j3", "missing"}, models.JobStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	j2, _ := store.GetByID(context.Background(), "j2")
	assert.Equal(t, models.JobStatusCompleted, j2.Status)
}

func TestCreateFromRequestStartsOpen(t *testing.T) {
	t.Parallel()

	store := newFakeJobStore()
	svc := NewJobService(store, NewActionGuard(), newTestNotifier())

	job, err := svc.CreateFromRequest(context.Background(), "cust-1", &wizard.JobRequest{
		Title:       "Fix leaking kitchen sink",
		Description: "The sink drips constantly",
		Category:    "Home Maintenance and Repairs",
		Subcategory: "Plumbing",
		Budget:      150,
		BudgetType:  models.BudgetTypeFixed,
		Priority:    models.JobPriorityMedium,
		Location:    "1 Elm St, Springfield, Illinois 00501",
	})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusOpen, job.Status)
	assert.Equal(t, "cust-1", job.CustomerID)
	// Empty slices serialize as [], not null.
	assert.Equal(t, "[]", string(job.Requirements))
}
