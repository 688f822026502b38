package models

import (
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	CustomerID       string      `gorm:"index" json:"customerId"`
	AssignedVendorID *string     `gorm:"index" json:"assignedVendorId,omitempty"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Category         string      `json:"category"`
	Subcategory      string      `json:"subcategory"`
	Budget           float64     `json:"budget"`
	BudgetType       BudgetType  `json:"budgetType"`
	Status           JobStatus   `gorm:"index" json:"status"`
	Priority         JobPriority `json:"priority"`
	Location         string      `json:"location"`
	IsRemote         bool        `json:"isRemote"`
	Deadline         *time.Time  `json:"deadline,omitempty"`
	// Requirements is an ordered list, Tags a set; both stored as JSONB.
	Requirements datatypes.JSON `gorm:"type:jsonb" json:"requirements"`
	Tags         datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	Images       datatypes.JSON `gorm:"type:jsonb" json:"images"`
	CancelReason *string        `json:"cancelReason,omitempty"`

	// BidCount is filled by list queries, not persisted.
	BidCount int64 `gorm:"-" json:"bidCount"`
}

// IsTerminal reports whether no further status transition is allowed.
func (j *Job) IsTerminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusCancelled
}

// CanAssignVendor enforces the invariant that a vendor may only be attached
// while the job is moving into, or already in, active work.
func (j *Job) CanAssignVendor() bool {
	return j.Status == JobStatusInProgress || j.Status == JobStatusCompleted
}
