package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var sourceNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_-]{0,31}$`)

// isLoginMode checks that a provider login mode is one we can drive.
func isLoginMode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "password", "attested":
		return true
	default:
		return false
	}
}

// isSourceName checks that a string can be used as a handicap source name.
func isSourceName(fl validator.FieldLevel) bool {
	return sourceNameRegex.MatchString(fl.Field().String())
}

// RegisterCustomValidators registers custom validation functions with the validator.
func RegisterCustomValidators(validate *validator.Validate) error {
	if err := validate.RegisterValidation("login_mode", isLoginMode); err != nil {
		return err
	}
	return validate.RegisterValidation("source_name", isSourceName)
}
