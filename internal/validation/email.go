package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// emailTag is the validator rule applied to signup emails.
const emailTag = "email"

// EmailValidator checks email format with go-playground/validator's "email"
// rule. It satisfies controller.EmailValidator.
type EmailValidator struct {
	validate *validator.Validate
}

// NewEmailValidator constructs an EmailValidator. A nil validate gets a fresh
// validator.New().
func NewEmailValidator(validate *validator.Validate) *EmailValidator {
	if validate == nil {
		validate = validator.New()
	}
	return &EmailValidator{validate: validate}
}

// IsValid reports whether email is a well-formed address.
//
// A rule failure yields (false, nil). Any other validator error means the
// check could not run and is returned as is.
func (v *EmailValidator) IsValid(email string) (bool, error) {
	err := v.validate.Var(email, emailTag)
	if err == nil {
		return true, nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return false, nil
	}

	return false, err
}
