package models

import "time"

type Bid struct {
	BaseModel
	JobID       string    `gorm:"index" json:"jobId"`
	VendorID    string    `gorm:"index" json:"vendorId"`
	Amount      float64   `json:"amount"`
	Message     string    `json:"message"`
	Timeline    string    `json:"timeline"`
	Status      BidStatus `gorm:"index" json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
}
