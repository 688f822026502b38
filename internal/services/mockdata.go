package services

import (
	"time"

	"servicehub_backend/internal/models"
)

// Fixed demo datasets served by fetch.WithFallback when a list fetch
// fails and demo fallback is enabled. Responses carry a fallback flag so
// substituted data is never mistaken for server truth.

func demoJobs(customerID string) []models.Job {
	now := time.Now()
	return []models.Job{
		{
			BaseModel:   models.BaseModel{ID: "demo-job-1", CreatedAt: now.AddDate(0, 0, -7)},
			CustomerID:  customerID,
			Title:       "Fix leaking kitchen sink",
			Category:    "Home Maintenance and Repairs",
			Subcategory: "Plumbing",
			Budget:      150,
			BudgetType:  models.BudgetTypeFixed,
			Status:      models.JobStatusOpen,
			Priority:    models.JobPriorityMedium,
			Location:    "1 Elm St, Springfield, Illinois 00501",
			BidCount:    3,
		},
		{
			BaseModel:   models.BaseModel{ID: "demo-job-2", CreatedAt: now.AddDate(0, 0, -20)},
			CustomerID:  customerID,
			Title:       "Repaint living room",
			Category:    "Home Maintenance and Repairs",
			Subcategory: "Painting",
			Budget:      600,
			BudgetType:  models.BudgetTypeFixed,
			Status:      models.JobStatusInProgress,
			Priority:    models.JobPriorityLow,
			BidCount:    5,
		},
		{
			BaseModel:   models.BaseModel{ID: "demo-job-3", CreatedAt: now.AddDate(0, -2, 0)},
			CustomerID:  customerID,
			Title:       "Deep clean apartment",
			Category:    "Cleaning Services",
			Subcategory: "Deep Cleaning",
			Budget:      220,
			BudgetType:  models.BudgetTypeFixed,
			Status:      models.JobStatusCompleted,
			Priority:    models.JobPriorityMedium,
			BidCount:    8,
		},
	}
}

func demoBids(vendorID string) []models.Bid {
	now := time.Now()
	return []models.Bid{
		{
			BaseModel:   models.BaseModel{ID: "demo-bid-1"},
			JobID:       "demo-job-1",
			VendorID:    vendorID,
			Amount:      140,
			Message:     "Can start tomorrow morning.",
			Timeline:    "1 day",
			Status:      models.BidStatusPending,
			SubmittedAt: now.AddDate(0, 0, -2),
		},
		{
			BaseModel:   models.BaseModel{ID: "demo-bid-2"},
			JobID:       "demo-job-3",
			VendorID:    vendorID,
			Amount:      200,
			Message:     "Includes all supplies.",
			Timeline:    "3 days",
			Status:      models.BidStatusAccepted,
			SubmittedAt: now.AddDate(0, -2, -3),
		},
	}
}

func demoVendors() []models.User {
	return []models.User{
		{
			BaseModelWithDeleted: models.BaseModelWithDeleted{BaseModel: models.BaseModel{ID: "demo-vendor-1"}},
			Email:                "plumbing.pros@example.com",
			Role:                 models.UserRoleVendor,
			Status:               models.AccountStatusActive,
			FirstName:            "Sam",
			LastName:             "Rivera",
			VendorStatus:         models.VendorStatusPending,
			Rating:               4.6,
			CompletedJobs:        31,
		},
		{
			BaseModelWithDeleted: models.BaseModelWithDeleted{BaseModel: models.BaseModel{ID: "demo-vendor-2"}},
			Email:                "cleanco@example.com",
			Role:                 models.UserRoleVendor,
			Status:               models.AccountStatusActive,
			FirstName:            "Ana",
			LastName:             "Kim",
			VendorStatus:         models.VendorStatusApproved,
			Rating:               4.9,
			CompletedJobs:        112,
		},
	}
}

func demoPayments() []models.Payment {
	return []models.Payment{
		{
			BaseModel:     models.BaseModel{ID: "demo-payment-1"},
			JobID:         "demo-job-3",
			Amount:        220,
			Currency:      "USD",
			Status:        models.PaymentStatusInEscrow,
			PaymentMethod: "card",
			TransactionID: "txn_demo_001",
		},
		{
			BaseModel:     models.BaseModel{ID: "demo-payment-2"},
			JobID:         "demo-job-2",
			Amount:        600,
			Currency:      "USD",
			Status:        models.PaymentStatusPending,
			PaymentMethod: "card",
			TransactionID: "txn_demo_002",
		},
	}
}
