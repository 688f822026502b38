package services

import (
	"context"
	"testing"

	"servicehub_backend/internal/models"
	"servicehub_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeBidStore keeps bids in a map. The accept cascade is all-or-nothing
// like the real transactional store: an injected failure applies nothing.
type fakeBidStore struct {
	bids      map[string]*models.Bid
	jobs      *fakeJobStore
	payments  []models.Payment
	acceptErr error
	nextID    int
}

func newFakeBidStore(seed ...*models.Bid) *fakeBidStore {
	s := &fakeBidStore{bids: map[string]*models.Bid{}}
	for _, b := range seed {
		s.bids[b.ID] = b
	}
	return s
}

func (s *fakeBidStore) Create(_ context.Context, bid *models.Bid) error {
	s.nextID++
	if bid.ID == "" {
		bid.ID = "bid-" + string(rune('0'+s.nextID))
	}
	copied := *bid
	s.bids[bid.ID] = &copied
	return nil
}

func (s *fakeBidStore) GetByID(_ context.Context, id string) (*models.Bid, error) {
	b, ok := s.bids[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *b
	return &copied, nil
}

func (s *fakeBidStore) ListByJob(_ context.Context, jobID string) ([]models.Bid, error) {
	var out []models.Bid
	for _, b := range s.bids {
		if b.JobID == jobID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *fakeBidStore) ListByVendor(_ context.Context, vendorID string) ([]models.Bid, error) {
	var out []models.Bid
	for _, b := range s.bids {
		if b.VendorID == vendorID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *fakeBidStore) UpdateStatus(_ context.Context, id string, status models.BidStatus) error {
	b, ok := s.bids[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	b.Status = status
	return nil
}

func (s *fakeBidStore) AcceptCascade(_ context.Context, bid *models.Bid, payment *models.Payment) error {
	if s.acceptErr != nil {
		return s.acceptErr
	}
	if b, ok := s.bids[bid.ID]; ok {
		b.Status = models.BidStatusAccepted
	}
	for _, b := range s.bids {
		if b.JobID == bid.JobID && b.ID != bid.ID {
			b.Status = models.BidStatusRejected
		}
	}
	if s.jobs != nil {
		if j, ok := s.jobs.jobs[bid.JobID]; ok {
			vendorID := bid.VendorID
			j.AssignedVendorID = &vendorID
			j.Status = models.JobStatusInProgress
		}
	}
	s.payments = append(s.payments, *payment)
	return nil
}

func (s *fakeBidStore) ExistsForVendor(_ context.Context, jobID, vendorID string) (bool, error) {
	for _, b := range s.bids {
		if b.JobID == jobID && b.VendorID == vendorID {
			return true, nil
		}
	}
	return false, nil
}

func approvedVendor(id string) *models.User {
	u := newUser(id, models.UserRoleVendor)
	u.VendorStatus = models.VendorStatusApproved
	return u
}

func seedBid(id, jobID, vendorID string, status models.BidStatus, amount float64) *models.Bid {
	b := &models.Bid{JobID: jobID, VendorID: vendorID, Status: status, Amount: amount}
	b.ID = id
	return b
}

func newTestBidService(bids *fakeBidStore, jobs *fakeJobStore, users map[string]*models.User) *BidService {
	bids.jobs = jobs
	return NewBidService(bids, jobs, &fakeUserLookup{users: users}, NewActionGuard(), newTestNotifier())
}

func TestPlaceBidOnOpenJob(t *testing.T) {
	t.Parallel()

	jobs := newFakeJobStore(seedJob("j1", "cust-1", models.JobStatusOpen))
	bids := newFakeBidStore()
	svc := newTestBidService(bids, jobs, map[string]*models.User{
		"vend-1": approvedVendor("vend-1"),
	})

	bid, err := svc.PlaceBid(context.Background(), "vend-1", "j1", &dto.PlaceBidRequest{Amount: 140, Message: "Can start tomorrow"})
	require.NoError(t, err)
	assert.Equal(t, models.BidStatusPending, bid.Status)
	assert.Equal(t, "j1", bid.JobID)

	// Second bid from the same vendor on the same job is rejected.
	_, err = svc.PlaceBid(context.Background(), "vend-1", "j1", &dto.PlaceBidRequest{Amount: 130, Message: "Lower offer"})
	assert.Error(t, err)
}

func TestPlaceBidRequiresApprovedVendor(t *testing.T) {
	t.Parallel()

	jobs := newFakeJobStore(seedJob("j1", "cust-1", models.JobStatusOpen))
	pending := newUser("vend-2", models.UserRoleVendor)
	pending.VendorStatus = models.VendorStatusPending
	svc := newTestBidService(newFakeBidStore(), jobs, map[string]*models.User{
		"vend-2": pending,
	})

	_, err := svc.PlaceBid(context.Background(), "vend-2", "j1", &dto.PlaceBidRequest{Amount: 140, Message: "hi"})
	assert.Error(t, err)
}

func TestPlaceBidRequiresOpenJob(t *testing.T) {
	t.Parallel()

	jobs := newFakeJobStore(seedJob("j1", "cust-1", models.JobStatusInProgress))
	svc := newTestBidService(newFakeBidStore(), jobs, map[string]*models.User{
		"vend-1": approvedVendor("vend-1"),
	})

	_, err := svc.PlaceBid(context.Background(), "vend-1", "j1", &dto.PlaceBidRequest{Amount: 140, Message: "hi"})
	assert.Error(t, err)
}

// Accepting one bid is a single action: the bid is accepted, every
// sibling rejected, the vendor assigned with the job moved to in
// progress, and a pending payment opened for the bid amount.
func TestAcceptBid(t *testing.T) {
	t.Parallel()

	jobs := newFakeJobStore(seedJob("j1", "cust-1", models.JobStatusOpen))
	bids := newFakeBidStore(
		seedBid("b1", "j1", "vend-1", models.BidStatusPending, 140),
		seedBid("b2", "j1", "vend-2", models.BidStatusPending, 160),
	)
	svc := newTestBidService(bids, jobs, map[string]*models.User{
		"vend-1": approvedVendor("vend-1"),
		"vend-2": approvedVendor("vend-2"),
	})

	accepted, err := svc.Accept(context.Background(), "cust-1", "b1")
	require.NoError(t, err)
	assert.Equal(t, models.BidStatusAccepted, accepted.Status)

	sibling, _ := bids.GetByID(context.Background(), "b2")
	assert.Equal(t, models.BidStatusRejected, sibling.Status)

	job, _ := jobs.GetByID(context.Background(), "j1")
	assert.Equal(t, models.JobStatusInProgress, job.Status)
	require.NotNil(t, job.AssignedVendorID)
	assert.Equal(t, "vend-1", *job.AssignedVendorID)

	require.Len(t, bids.payments, 1)
	assert.Equal(t, models.PaymentStatusPending, bids.payments[0].Status)
	assert.Equal(t, 140.0, bids.payments[0].Amount)
	assert.Equal(t, "vend-1", bids.payments[0].VendorID)
}

// A failed accept applies nothing: the bid stays pending, the job stays
// open and unassigned, and no payment is opened. The same accept then
// succeeds once the store recovers.
func TestAcceptBidFailureLeavesNoPartialState(t *testing.T) {
	t.Parallel()

	jobs := newFakeJobStore(seedJob("j1", "cust-1", models.JobStatusOpen))
	bids := newFakeBidStore(
		seedBid("b1", "j1", "vend-1", models.BidStatusPending, 140),
		seedBid("b2", "j1", "vend-2", models.BidStatusPending, 160),
	)
	bids.acceptErr = gorm.ErrInvalidTransaction
	svc := newTestBidService(bids, jobs, map[string]*models.User{
		"vend-1": approvedVendor("vend-1"),
		"vend-2": approvedVendor("vend-2"),
	})

	_, err := svc.Accept(context.Background(), "cust-1", "b1")
	require.Error(t, err)

	bid, _ := bids.GetByID(context.Background(), "b1")
	assert.Equal(t, models.BidStatusPending, bid.Status)
	sibling, _ := bids.GetByID(context.Background(), "b2")
	assert.Equal(t, models.BidStatusPending, sibling.Status)

	job, _ := jobs.GetByID(context.Background(), "j1")
	assert.Equal(t, models.JobStatusOpen, job.Status)
	assert.Nil(t, job.AssignedVendorID)
	assert.Empty(t, bids.payments)

	// The guard released the job row, so the retry is not blocked.
	bids.acceptErr = nil
	_, err = svc.Accept(context.Background(), "cust-1", "b1")
	require.NoError(t, err)
	require.Len(t, bids.payments, 1)
}

func TestAcceptBidOwnershipAndState(t *testing.T) {
	t.Parallel()

	jobs := newFakeJobStore(seedJob("j1", "cust-1", models.JobStatusOpen))
	bids := newFakeBidStore(seedBid("b1", "j1", "vend-1", models.BidStatusPending, 140))
	svc := newTestBidService(bids, jobs, map[string]*models.User{
		"vend-1": approvedVendor("vend-1"),
	})

	// Not the job owner.
	_, err := svc.Accept(context.Background(), "cust-2", "b1")
	assert.Error(t, err)

	// An already rejected bid cannot be accepted.
	require.NoError(t, bids.UpdateStatus(context.Background(), "b1", models.BidStatusRejected))
	_, err = svc.Accept(context.Background(), "cust-1", "b1")
	assert.Error(t, err)
}

func TestRejectBid(t *testing.T) {
	t.Parallel()

	jobs := newFakeJobStore(seedJob("j1", "cust-1", models.JobStatusOpen))
	bids := newFakeBidStore(
		seedBid("b1", "j1", "vend-1", models.BidStatusPending, 140),
		seedBid("b2", "j1", "vend-2", models.BidStatusPending, 160),
	)
	svc := newTestBidService(bids, jobs, map[string]*models.User{
		"vend-1": approvedVendor("vend-1"),
		"vend-2": approvedVendor("vend-2"),
	})

	require.NoError(t, svc.Reject(context.Background(), "cust-1", "b1"))

	rejected, _ := bids.GetByID(context.Background(), "b1")
	assert.Equal(t, models.BidStatusRejected, rejected.Status)

	// Rejecting one bid leaves the job and its other bids untouched.
	job, _ := jobs.GetByID(context.Background(), "j1")
	assert.Equal(t, models.JobStatusOpen, job.Status)
	other, _ := bids.GetByID(context.Background(), "b2")
	assert.Equal(t, models.BidStatusPending, other.Status)
}

func TestAcceptedBidCannotBeRejected(t *testing.T) {
	t.Parallel()

	jobs := newFakeJobStore(seedJob("j1", "cust-1", models.JobStatusInProgress))
	bids := newFakeBidStore(seedBid("b1", "j1", "vend-1", models.BidStatusAccepted, 140))
	svc := newTestBidService(bids, jobs, map[string]*models.User{
		"vend-1": approvedVendor("vend-1"),
	})

	err := svc.Reject(context.Background(), "cust-1", "b1")
	assert.Error(t, err)
}
