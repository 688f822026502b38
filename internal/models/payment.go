package models

type Payment struct {
	BaseModel
	JobID         string        `gorm:"index" json:"jobId"`
	CustomerID    string        `gorm:"index" json:"customerId"`
	VendorID      string        `gorm:"index" json:"vendorId"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	Status        PaymentStatus `gorm:"index" json:"status"`
	PaymentMethod string        `json:"paymentMethod"`
	TransactionID string        `json:"transactionId"`
}

// IsTerminal reports whether the payment reached one of the mutually
// exclusive terminal states.
func (p *Payment) IsTerminal() bool {
	return p.Status == PaymentStatusReleased || p.Status == PaymentStatusRefunded
}
