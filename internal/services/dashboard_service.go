package services

import (
	"context"

	"servicehub_backend/internal/dashboard"
	"servicehub_backend/internal/fetch"
	"servicehub_backend/internal/logger"
	"servicehub_backend/internal/models"
	"servicehub_backend/internal/services/dto"
	"servicehub_backend/pkg/apperrors"
)

type dashboardJobStore interface {
	ListByCustomer(ctx context.Context, customerID string) ([]models.Job, error)
	ListAssignedToVendor(ctx context.Context, vendorID string) ([]models.Job, error)
	StatsForCustomer(ctx context.Context, customerID string) (dashboard.Stats, error)
}

type dashboardBidStore interface {
	ListByVendor(ctx context.Context, vendorID string) ([]models.Bid, error)
}

// DashboardService assembles the customer and vendor dashboards: one list
// fetch, partitioned into tabs and summarized, with no per-bucket round
// trips.
type DashboardService struct {
	jobs         dashboardJobStore
	bids         dashboardBidStore
	demoFallback bool
}

func NewDashboardService(jobs dashboardJobStore, bids dashboardBidStore, demoFallback bool) *DashboardService {
	return &DashboardService{jobs: jobs, bids: bids, demoFallback: demoFallback}
}

// CustomerDashboard partitions the customer's jobs and derives the summary
// stats. The server-side aggregate is preferred; when it is unavailable
// the stats are derived from the fetched list — the two must agree for the
// same list.
func (s *DashboardService) CustomerDashboard(ctx context.Context, customerID string) (*dto.CustomerDashboardResponse, error) {
	var fallback []models.Job
	if s.demoFallback {
		fallback = demoJobs(customerID)
	}

	jobs, fromFallback, err := fetch.WithFallback(ctx, func(ctx context.Context) ([]models.Job, error) {
		return s.jobs.ListByCustomer(ctx, customerID)
	}, fallback)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "dashboard", "Failed to load jobs", 500)
	}

	resp := &dto.CustomerDashboardResponse{
		Buckets:  dashboard.Partition(jobs),
		Fallback: fromFallback,
	}

	if fromFallback {
		resp.Stats = dashboard.DeriveStats(jobs)
		return resp, nil
	}

	stats, err := s.jobs.StatsForCustomer(ctx, customerID)
	if err != nil {
		logger.CtxWarn(ctx, "stats aggregate unavailable, deriving from list", "error", err.Error())
		stats = dashboard.DeriveStats(jobs)
	}
	resp.Stats = stats
	return resp, nil
}

// VendorDashboard partitions the vendor's bids and lists awarded jobs.
func (s *DashboardService) VendorDashboard(ctx context.Context, vendorID string) (*dto.VendorDashboardResponse, error) {
	var fallbackBids []models.Bid
	if s.demoFallback {
		fallbackBids = demoBids(vendorID)
	}

	bids, fromFallback, err := fetch.WithFallback(ctx, func(ctx context.Context) ([]models.Bid, error) {
		return s.bids.ListByVendor(ctx, vendorID)
	}, fallbackBids)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "dashboard", "Failed to load bids", 500)
	}

	var awarded []models.Job
	if !fromFallback {
		awarded, err = s.jobs.ListAssignedToVendor(ctx, vendorID)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "dashboard", "Failed to load awarded jobs", 500)
		}
	}

	return &dto.VendorDashboardResponse{
		Bids:     dashboard.PartitionBids(bids),
		Awarded:  awarded,
		Stats:    dashboard.DeriveVendorStats(bids, awarded),
		Fallback: fromFallback,
	}, nil
}
