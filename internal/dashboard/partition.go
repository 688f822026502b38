package dashboard

import (
	"servicehub_backend/internal/models"
)

// Buckets is the tabbed partition of a job list. All is Active followed by
// Completed; that concatenation order, not the fetch order, is what the
// "all" tab renders.
type Buckets struct {
	Active    []models.Job `json:"active"`
	Completed []models.Job `json:"completed"`
	All       []models.Job `json:"all"`
}

// Partition splits jobs into the dashboard buckets purely by status.
// Active and Completed are disjoint; jobs in other states (cancelled,
// disputed) appear in neither. The input is never mutated.
func Partition(jobs []models.Job) Buckets {
	b := Buckets{
		Active:    make([]models.Job, 0, len(jobs)),
		Completed: make([]models.Job, 0, len(jobs)),
	}
	for _, j := range jobs {
		switch j.Status {
		case models.JobStatusOpen, models.JobStatusInProgress:
			b.Active = append(b.Active, j)
		case models.JobStatusCompleted:
			b.Completed = append(b.Completed, j)
		}
	}
	b.All = make([]models.Job, 0, len(b.Active)+len(b.Completed))
	b.All = append(b.All, b.Active...)
	b.All = append(b.All, b.Completed...)
	return b
}

// PartitionBids groups a vendor's bids for the vendor dashboard tabs.
type BidBuckets struct {
	Pending  []models.Bid `json:"pending"`
	Accepted []models.Bid `json:"accepted"`
	Rejected []models.Bid `json:"rejected"`
	All      []models.Bid `json:"all"`
}

func PartitionBids(bids []models.Bid) BidBuckets {
	b := BidBuckets{
		Pending:  make([]models.Bid, 0, len(bids)),
		Accepted: make([]models.Bid, 0, len(bids)),
		Rejected: make([]models.Bid, 0, len(bids)),
	}
	for _, bid := range bids {
		switch bid.Status {
		case models.BidStatusPending, models.BidStatusUnderReview:
			b.Pending = append(b.Pending, bid)
		case models.BidStatusAccepted:
			b.Accepted = append(b.Accepted, bid)
		case models.BidStatusRejected:
			b.Rejected = append(b.Rejected, bid)
		}
	}
	b.All = make([]models.Bid, 0, len(bids))
	b.All = append(b.All, b.Pending...)
	b.All = append(b.All, b.Accepted...)
	b.All = append(b.All, b.Rejected...)
	return b
}
