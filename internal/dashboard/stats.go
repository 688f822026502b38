package dashboard

import (
	"servicehub_backend/internal/models"
)

// Stats are the dashboard summary counters. When the backend provides an
// aggregate stats payload it is preferred; DeriveStats is the client-side
// fallback, and both must agree for the same job list.
type Stats struct {
	TotalJobs     int   `json:"totalJobs"`
	ActiveJobs    int   `json:"activeJobs"`
	TotalBids     int64 `json:"totalBids"`
	CompletedJobs int   `json:"completedJobs"`
}

// DeriveStats recomputes the summary counters from a flat job list. Bid
// counts missing on a job contribute zero.
func DeriveStats(jobs []models.Job) Stats {
	var s Stats
	s.TotalJobs = len(jobs)
	for _, j := range jobs {
		switch j.Status {
		case models.JobStatusOpen, models.JobStatusInProgress:
			s.ActiveJobs++
		case models.JobStatusCompleted:
			s.CompletedJobs++
		}
		s.TotalBids += j.BidCount
	}
	return s
}

// VendorStats summarizes the vendor dashboard.
type VendorStats struct {
	TotalBids    int `json:"totalBids"`
	PendingBids  int `json:"pendingBids"`
	AcceptedBids int `json:"acceptedBids"`
	AwardedJobs  int `json:"awardedJobs"`
}

func DeriveVendorStats(bids []models.Bid, awarded []models.Job) VendorStats {
	var s VendorStats
	s.TotalBids = len(bids)
	for _, b := range bids {
		switch b.Status {
		case models.BidStatusPending, models.BidStatusUnderReview:
			s.PendingBids++
		case models.BidStatusAccepted:
			s.AcceptedBids++
		}
	}
	s.AwardedJobs = len(awarded)
	return s
}
