package models

// BadgeVariant is the visual emphasis level a status maps to. Every panel
// renders status badges through this one table; the per-panel switch
// statements it replaces had drifted apart.
type BadgeVariant string

const (
	BadgeDefault     BadgeVariant = "default"     // positive
	BadgeSecondary   BadgeVariant = "secondary"   // neutral / pending
	BadgeDestructive BadgeVariant = "destructive" // negative / blocked
	BadgeOutline     BadgeVariant = "outline"     // informational
)

// BadgeEntity selects which entity's status vocabulary to look up.
type BadgeEntity string

const (
	BadgeEntityJob      BadgeEntity = "job"
	BadgeEntityVendor   BadgeEntity = "vendor"
	BadgeEntityCustomer BadgeEntity = "customer"
	BadgeEntityPayment  BadgeEntity = "payment"
	BadgeEntityCategory BadgeEntity = "category"
)

var badgeTables = map[BadgeEntity]map[string]BadgeVariant{
	BadgeEntityJob: {
		string(JobStatusCompleted):  BadgeDefault,
		string(JobStatusInProgress): BadgeDefault,
		string(JobStatusCancelled):  BadgeDestructive,
		string(JobStatusDisputed):   BadgeDestructive,
		string(JobStatusOpen):       BadgeOutline,
	},
	BadgeEntityVendor: {
		string(VendorStatusApproved):  BadgeDefault,
		string(VendorStatusRejected):  BadgeDestructive,
		string(VendorStatusPending):   BadgeSecondary,
		string(VendorStatusSuspended): BadgeSecondary,
	},
	BadgeEntityCustomer: {
		string(CustomerStatusActive):    BadgeDefault,
		string(CustomerStatusSuspended): BadgeDestructive,
		string(CustomerStatusInactive):  BadgeSecondary,
	},
	BadgeEntityPayment: {
		string(PaymentStatusReleased): BadgeDefault,
		string(PaymentStatusInEscrow): BadgeDefault,
		string(PaymentStatusRefunded): BadgeDestructive,
		string(PaymentStatusDisputed): BadgeDestructive,
		string(PaymentStatusPending):  BadgeSecondary,
	},
	BadgeEntityCategory: {
		string(CategoryStatusActive):   BadgeDefault,
		string(CategoryStatusInactive): BadgeSecondary,
	},
}

// BadgeVariantFor returns the badge variant for the given entity/status
// pair. It is total: unknown entities or statuses fall back to
// BadgeSecondary rather than failing.
func BadgeVariantFor(entity BadgeEntity, status string) BadgeVariant {
	table, ok := badgeTables[entity]
	if !ok {
		return BadgeSecondary
	}
	variant, ok := table[status]
	if !ok {
		return BadgeSecondary
	}
	return variant
}
