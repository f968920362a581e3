package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/auth"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
)

// registerCustomRules wires every custom validation tag into the
// validator instance.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a boot-time defect.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// Enum rules backed by statuses.go.
	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-job-type", validateJobType)
	mustRegister("is-work-mode", validateWorkMode)
	mustRegister("is-alert-frequency", validateAlertFrequency)

	// Field-format rules.
	mustRegister("strong_password", validateStrongPassword)
	mustRegister("mobile", validateMobile)
}

// Empty values pass every enum rule; 'required' handles presence.

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.UserRole(value).Valid()
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ApplicationStatus(value).Valid()
}

func validateJobType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.JobType(value).Valid()
}

func validateWorkMode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.WorkMode(value).Valid()
}

func validateAlertFrequency(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.AlertFrequency(value).Valid()
}

// validateStrongPassword delegates to the account password policy in
// the auth package, keeping a single definition of "strong".
func validateStrongPassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return auth.ValidatePassword(value) == nil
}

func validateMobile(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	if len(value) != 10 {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
