package dto

import (
	"servicehub_backend/internal/dashboard"
	"servicehub_backend/internal/models"
)

type CustomerDashboardResponse struct {
	Buckets dashboard.Buckets `json:"buckets"`
	Stats   dashboard.Stats   `json:"stats"`
	// Fallback marks the data as the substituted demo dataset, not
	// server truth.
	Fallback bool `json:"fallback"`
}

type VendorDashboardResponse struct {
	Bids     dashboard.BidBuckets  `json:"bids"`
	Awarded  []models.Job          `json:"awarded"`
	Stats    dashboard.VendorStats `json:"stats"`
	Fallback bool                  `json:"fallback"`
}
