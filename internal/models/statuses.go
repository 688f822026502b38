package models

type UserRole string
type AccountStatus string
type JobStatus string
type BidStatus string
type VendorStatus string
type CustomerStatus string
type PaymentStatus string
type CategoryStatus string

const (
	UserRoleCustomer UserRole = "CUSTOMER"
	UserRoleVendor   UserRole = "VENDOR"
	UserRoleAdmin    UserRole = "ADMIN"

	AccountStatusActive    AccountStatus = "ACTIVE"
	AccountStatusSuspended AccountStatus = "SUSPENDED"
	AccountStatusDeleted   AccountStatus = "DELETED"

	JobStatusOpen       JobStatus = "OPEN"
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusCompleted  JobStatus = "COMPLETED"
	JobStatusCancelled  JobStatus = "CANCELLED"
	JobStatusDisputed   JobStatus = "DISPUTED"

	BidStatusPending     BidStatus = "PENDING"
	BidStatusUnderReview BidStatus = "UNDER_REVIEW"
	BidStatusAccepted    BidStatus = "ACCEPTED"
	BidStatusRejected    BidStatus = "REJECTED"

	VendorStatusPending   VendorStatus = "pending"
	VendorStatusApproved  VendorStatus = "approved"
	VendorStatusRejected  VendorStatus = "rejected"
	VendorStatusSuspended VendorStatus = "suspended"

	CustomerStatusActive    CustomerStatus = "active"
	CustomerStatusInactive  CustomerStatus = "inactive"
	CustomerStatusSuspended CustomerStatus = "suspended"

	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusInEscrow PaymentStatus = "in_escrow"
	PaymentStatusReleased PaymentStatus = "released"
	PaymentStatusRefunded PaymentStatus = "refunded"
	PaymentStatusDisputed PaymentStatus = "disputed"

	CategoryStatusActive   CategoryStatus = "active"
	CategoryStatusInactive CategoryStatus = "inactive"
)

type BudgetType string
type JobPriority string

const (
	BudgetTypeFixed  BudgetType = "FIXED"
	BudgetTypeHourly BudgetType = "HOURLY"

	JobPriorityLow    JobPriority = "LOW"
	JobPriorityMedium JobPriority = "MEDIUM"
	JobPriorityHigh   JobPriority = "HIGH"
	JobPriorityUrgent JobPriority = "URGENT"
)

var ValidJobStatuses = map[JobStatus]struct{}{
	JobStatusOpen:       {},
	JobStatusInProgress: {},
	JobStatusCompleted:  {},
	JobStatusCancelled:  {},
	JobStatusDisputed:   {},
}

var ValidBidStatuses = map[BidStatus]struct{}{
	BidStatusPending:     {},
	BidStatusUnderReview: {},
	BidStatusAccepted:    {},
	BidStatusRejected:    {},
}

var ValidVendorStatuses = map[VendorStatus]struct{}{
	VendorStatusPending:   {},
	VendorStatusApproved:  {},
	VendorStatusRejected:  {},
	VendorStatusSuspended: {},
}

var ValidPaymentStatuses = map[PaymentStatus]struct{}{
	PaymentStatusPending:  {},
	PaymentStatusInEscrow: {},
	PaymentStatusReleased: {},
	PaymentStatusRefunded: {},
	PaymentStatusDisputed: {},
}
