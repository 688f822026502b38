package validator

import (
	"log"

	"servicehub_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires the status vocabularies from models into
// validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-job-status", validateJobStatus)
	mustRegister("is-bid-status", validateBidStatus)
	mustRegister("is-vendor-status", validateVendorStatus)
	mustRegister("is-payment-status", validatePaymentStatus)
	mustRegister("is-budget-type", validateBudgetType)
	mustRegister("is-priority", validatePriority)
}

func validateJobStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // emptiness is the 'required' tag's concern
	}
	_, ok := models.ValidJobStatuses[models.JobStatus(value)]
	return ok
}

func validateBidStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := models.ValidBidStatuses[models.BidStatus(value)]
	return ok
}

func validateVendorStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := models.ValidVendorStatuses[models.VendorStatus(value)]
	return ok
}

func validatePaymentStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, ok := models.ValidPaymentStatuses[models.PaymentStatus(value)]
	return ok
}

func validateBudgetType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || value == string(models.BudgetTypeFixed) || value == string(models.BudgetTypeHourly)
}

func validatePriority(fl validator.FieldLevel) bool {
	switch models.JobPriority(fl.Field().String()) {
	case "", models.JobPriorityLow, models.JobPriorityMedium, models.JobPriorityHigh, models.JobPriorityUrgent:
		return true
	}
	return false
}
