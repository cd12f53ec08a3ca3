package validator

import (
	"log"

	"jobbridge_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the marketplace enum rules. Empty values are
// accepted by every rule; 'required' handles presence separately.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup defect.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-public-role", validatePublicRole)
	mustRegister("is-subscription-type", validateSubscriptionType)
	mustRegister("is-payment-decision", validatePaymentDecision)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-job-type", validateJobType)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidUserRole(models.UserRole(value))
}

// validatePublicRole accepts the roles open to self-registration. ADMIN
// accounts are only ever seeded or promoted, never registered.
func validatePublicRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	case models.UserRoleJobSeeker, models.UserRoleCompany, models.UserRoleOrganization:
		return true
	default:
		return false
	}
}

func validateSubscriptionType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.SubscriptionType(value) {
	case models.SubscriptionTypeDirect, models.SubscriptionTypeIndirect:
		return true
	default:
		return false
	}
}

func validatePaymentDecision(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	// Only the two decisions are accepted; PENDING cannot be assigned back.
	switch models.PaymentStatus(value) {
	case models.PaymentStatusApproved, models.PaymentStatusRejected:
		return true
	default:
		return false
	}
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidApplicationStatus(models.ApplicationStatus(value))
}

func validateJobType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidJobType(models.JobType(value))
}
