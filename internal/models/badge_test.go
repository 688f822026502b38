package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadgeVariantForJob(t *testing.T) {
	t.Parallel()

	assert.Equal(t, BadgeDefault, BadgeVariantFor(BadgeEntityJob, string(JobStatusCompleted)))
	assert.Equal(t, BadgeDefault, BadgeVariantFor(BadgeEntityJob, string(JobStatusInProgress)))
	assert.Equal(t, BadgeDestructive, BadgeVariantFor(BadgeEntityJob, string(JobStatusCancelled)))
	assert.Equal(t, BadgeDestructive, BadgeVariantFor(BadgeEntityJob, string(JobStatusDisputed)))
	assert.Equal(t, BadgeOutline, BadgeVariantFor(BadgeEntityJob, string(JobStatusOpen)))
}

func TestBadgeVariantForVendor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, BadgeDefault, BadgeVariantFor(BadgeEntityVendor, string(VendorStatusApproved)))
	assert.Equal(t, BadgeDestructive, BadgeVariantFor(BadgeEntityVendor, string(VendorStatusRejected)))
	assert.Equal(t, BadgeSecondary, BadgeVariantFor(BadgeEntityVendor, string(VendorStatusPending)))
	assert.Equal(t, BadgeSecondary, BadgeVariantFor(BadgeEntityVendor, string(VendorStatusSuspended)))
}

// The lookup must be total: any status string for any entity resolves to
// a variant, with the neutral variant as the fallback.
func TestBadgeVariantForIsTotal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, BadgeSecondary, BadgeVariantFor(BadgeEntityJob, "NOT_A_STATUS"))
	assert.Equal(t, BadgeSecondary, BadgeVariantFor(BadgeEntityPayment, ""))
	assert.Equal(t, BadgeSecondary, BadgeVariantFor(BadgeEntity("unknown"), string(JobStatusOpen)))
}

func TestEveryKnownStatusHasABadge(t *testing.T) {
	t.Parallel()

	for status := range ValidJobStatuses {
		assert.NotEmpty(t, BadgeVariantFor(BadgeEntityJob, string(status)))
	}
	for status := range ValidVendorStatuses {
		assert.NotEmpty(t, BadgeVariantFor(BadgeEntityVendor, string(status)))
	}
	for status := range ValidPaymentStatuses {
		assert.NotEmpty(t, BadgeVariantFor(BadgeEntityPayment, string(status)))
	}
}
