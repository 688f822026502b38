package models

// Explicit status transition whitelists. A transition missing from these
// tables must be rejected before any request is dispatched to storage;
// buttons that "happen to render" are not a guard.

var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusOpen:       {JobStatusInProgress, JobStatusCancelled},
	JobStatusInProgress: {JobStatusCompleted, JobStatusCancelled, JobStatusDisputed},
	// A dispute is a side branch: an admin resolves it back to completed
	// or cancelled, nothing else.
	JobStatusDisputed:  {JobStatusCompleted, JobStatusCancelled},
	JobStatusCompleted: {},
	JobStatusCancelled: {},
}

var vendorTransitions = map[VendorStatus][]VendorStatus{
	VendorStatusPending:   {VendorStatusApproved, VendorStatusRejected},
	VendorStatusApproved:  {VendorStatusSuspended},
	VendorStatusSuspended: {VendorStatusApproved},
	VendorStatusRejected:  {},
}

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPending:  {PaymentStatusInEscrow, PaymentStatusRefunded},
	PaymentStatusInEscrow: {PaymentStatusReleased, PaymentStatusRefunded, PaymentStatusDisputed},
	PaymentStatusDisputed: {PaymentStatusReleased, PaymentStatusRefunded},
	PaymentStatusReleased: {},
	PaymentStatusRefunded: {},
}

var customerTransitions = map[CustomerStatus][]CustomerStatus{
	CustomerStatusActive:    {CustomerStatusInactive},
	CustomerStatusInactive:  {CustomerStatusActive},
	CustomerStatusSuspended: {CustomerStatusActive},
}

var categoryTransitions = map[CategoryStatus][]CategoryStatus{
	CategoryStatusActive:   {CategoryStatusInactive},
	CategoryStatusInactive: {CategoryStatusActive},
}

func contains[S ~string](list []S, s S) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// CanTransitionJob reports whether from -> to is an allowed job transition.
func CanTransitionJob(from, to JobStatus) bool {
	return contains(jobTransitions[from], to)
}

func CanTransitionVendor(from, to VendorStatus) bool {
	return contains(vendorTransitions[from], to)
}

func CanTransitionPayment(from, to PaymentStatus) bool {
	return contains(paymentTransitions[from], to)
}

func CanTransitionCustomer(from, to CustomerStatus) bool {
	return contains(customerTransitions[from], to)
}

func CanTransitionCategory(from, to CategoryStatus) bool {
	return contains(categoryTransitions[from], to)
}

// AllowedJobTransitions returns the actions that may be offered for a job
// in the given status.
func AllowedJobTransitions(from JobStatus) []JobStatus {
	return jobTransitions[from]
}

func AllowedVendorTransitions(from VendorStatus) []VendorStatus {
	return vendorTransitions[from]
}

func AllowedPaymentTransitions(from PaymentStatus) []PaymentStatus {
	return paymentTransitions[from]
}
