package services

import (
	"context"
	"errors"
	"time"

	"servicehub_backend/internal/models"
	"servicehub_backend/internal/services/dto"
	"servicehub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type BidStore interface {
	Create(ctx context.Context, bid *models.Bid) error
	GetByID(ctx context.Context, id string) (*models.Bid, error)
	ListByJob(ctx context.Context, jobID string) ([]models.Bid, error)
	ListByVendor(ctx context.Context, vendorID string) ([]models.Bid, error)
	UpdateStatus(ctx context.Context, id string, status models.BidStatus) error
	AcceptCascade(ctx context.Context, bid *models.Bid, payment *models.Payment) error
	ExistsForVendor(ctx context.Context, jobID, vendorID string) (bool, error)
}

type bidJobStore interface {
	GetByID(ctx context.Context, id string) (*models.Job, error)
}

type bidUserLookup interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type BidService struct {
	bids     BidStore
	jobs     bidJobStore
	users    bidUserLookup
	guard    *ActionGuard
	notifier *NotificationService
}

func NewBidService(bids BidStore, jobs bidJobStore, users bidUserLookup, guard *ActionGuard, notifier *NotificationService) *BidService {
	return &BidService{
		bids:     bids,
		jobs:     jobs,
		users:    users,
		guard:    guard,
		notifier: notifier,
	}
}

// PlaceBid submits a vendor's proposal on an open job. Only approved
// vendors may bid, and only once per job.
func (s *BidService) PlaceBid(ctx context.Context, vendorID, jobID string, req *dto.PlaceBidRequest) (*models.Bid, error) {
	vendor, err := s.users.FindByID(ctx, vendorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !vendor.IsVendor() || vendor.VendorStatus != models.VendorStatusApproved {
		return nil, apperrors.ErrInsufficientPermissions
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if job.Status != models.JobStatusOpen {
		return nil, apperrors.ErrJobNotOpen
	}

	exists, err := s.bids.ExistsForVendor(ctx, jobID, vendorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrConflict(nil, "bid", "You already placed a bid on this job")
	}

	bid := &models.Bid{
		JobID:       jobID,
		VendorID:    vendorID,
		Amount:      req.Amount,
		Message:     req.Message,
		Timeline:    req.Timeline,
		Status:      models.BidStatusPending,
		SubmittedAt: time.Now(),
	}
	if err := s.bids.Create(ctx, bid); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "bid", "Failed to place bid", 500)
	}

	s.notifier.NotifyBidReceived(ctx, job.CustomerID, job.Title)
	return bid, nil
}

// ListForJob returns a job's bids to its owner or an admin.
func (s *BidService) ListForJob(ctx context.Context, actor *models.User, jobID string) ([]models.Bid, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if !actor.IsAdmin() && job.CustomerID != actor.ID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return s.bids.ListByJob(ctx, jobID)
}

// Accept awards the job to the bidding vendor: the bid becomes accepted,
// sibling bids are rejected, the vendor is assigned and the job moves to
// in progress, and an escrow payment is opened — all in one store
// transaction, so a mid-cascade failure leaves nothing half applied. The
// job row is guarded for the duration.
func (s *BidService) Accept(ctx context.Context, customerID, bidID string) (*models.Bid, error) {
	bid, err := s.getBid(ctx, bidID)
	if err != nil {
		return nil, err
	}

	if err := s.guard.Begin("job", bid.JobID); err != nil {
		return nil, err
	}
	defer s.guard.End("job", bid.JobID)

	job, err := s.jobs.GetByID(ctx, bid.JobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if job.CustomerID != customerID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if bid.Status != models.BidStatusPending && bid.Status != models.BidStatusUnderReview {
		return nil, apperrors.ErrInvalidStatus("bid", "Only pending bids can be accepted")
	}
	if !models.CanTransitionJob(job.Status, models.JobStatusInProgress) {
		return nil, apperrors.ErrJobNotOpen
	}

	payment := &models.Payment{
		JobID:      bid.JobID,
		CustomerID: customerID,
		VendorID:   bid.VendorID,
		Amount:     bid.Amount,
		Currency:   "USD",
		Status:     models.PaymentStatusPending,
	}
	if err := s.bids.AcceptCascade(ctx, bid, payment); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "bid", "Failed to accept bid", 500)
	}

	s.notifier.NotifyBidAccepted(ctx, bid.VendorID, job.Title)

	bid.Status = models.BidStatusAccepted
	return bid, nil
}

// Reject declines one bid without touching the job or its other bids.
func (s *BidService) Reject(ctx context.Context, customerID, bidID string) error {
	bid, err := s.getBid(ctx, bidID)
	if err != nil {
		return err
	}
	job, err := s.jobs.GetByID(ctx, bid.JobID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if job.CustomerID != customerID {
		return apperrors.ErrInsufficientPermissions
	}
	if bid.Status == models.BidStatusAccepted {
		return apperrors.ErrInvalidStatus("bid", "An accepted bid cannot be rejected")
	}
	if err := s.bids.UpdateStatus(ctx, bid.ID, models.BidStatusRejected); err != nil {
		return apperrors.Wrap(err, apperrors.CodeDatabaseError, "bid", "Failed to reject bid", 500)
	}
	return nil
}

func (s *BidService) getBid(ctx context.Context, bidID string) (*models.Bid, error) {
	bid, err := s.bids.GetByID(ctx, bidID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return bid, nil
}
