package controller

import (
	"context"
	"fmt"
	"math"

	"github.com/deppfellow/signup/internal/errs"
	"github.com/deppfellow/signup/internal/model"
	"github.com/rs/zerolog"
)

const (
	fieldName                 = "name"
	fieldEmail                = "email"
	fieldPassword             = "password"
	fieldPasswordConfirmation = "passwordConfirmation"
)

// signUpRequiredFields is checked in order; the first missing field is reported.
var signUpRequiredFields = []string{
	fieldName,
	fieldEmail,
	fieldPassword,
	fieldPasswordConfirmation,
}

// SignUpController validates a signup request and creates the account.
//
// Validation sequence:
//  1. required fields, fail-fast in signUpRequiredFields order
//  2. password must equal passwordConfirmation
//  3. email format, through EmailValidator
//  4. account creation, through AddAccount
//
// Any fault from either collaborator, returned or panicked, becomes a 500.
type SignUpController struct {
	emailValidator EmailValidator
	addAccount     AddAccount
}

var _ Controller = (*SignUpController)(nil)

// NewSignUpController constructs a SignUpController. The collaborators are
// never replaced after construction.
func NewSignUpController(emailValidator EmailValidator, addAccount AddAccount) *SignUpController {
	return &SignUpController{
		emailValidator: emailValidator,
		addAccount:     addAccount,
	}
}

// Handle runs the signup validation sequence for req.
func (s *SignUpController) Handle(ctx context.Context, req Request) (resp Response) {
	logger := zerolog.Ctx(ctx).With().Str("operation", "signup").Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Str("panic", fmt.Sprint(r)).
				Msg("signup collaborator panicked")
			resp = ServerError()
		}
	}()

	for _, field := range signUpRequiredFields {
		if isFalsy(req.Body[field]) {
			return BadRequest(errs.NewMissingParamError(field))
		}
	}

	password, ok := matchingPasswords(req.Body[fieldPassword], req.Body[fieldPasswordConfirmation])
	if !ok {
		return BadRequest(errs.NewInvalidParamError(fieldPasswordConfirmation))
	}

	name := stringField(req.Body, fieldName)
	email := stringField(req.Body, fieldEmail)

	isValid, err := s.emailValidator.IsValid(email)
	if err != nil {
		logger.Error().Err(err).Msg("email validation failed")
		return ServerError()
	}

	if !isValid {
		return BadRequest(errs.NewInvalidParamError(fieldEmail))
	}

	account, err := s.addAccount.Add(ctx, model.AddAccountParams{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		logger.Error().Err(err).Msg("account creation failed")
		return ServerError()
	}

	return OK(account)
}

// isFalsy reports whether a field value counts as missing: absent, nil,
// empty string, false, or a numeric zero/NaN.
func isFalsy(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case string:
		return value == ""
	case bool:
		return !value
	case float64:
		return value == 0 || math.IsNaN(value)
	case float32:
		return value == 0 || math.IsNaN(float64(value))
	case int:
		return value == 0
	case int64:
		return value == 0
	case int32:
		return value == 0
	case uint:
		return value == 0
	case uint64:
		return value == 0
	default:
		return false
	}
}

// matchingPasswords returns the password when both values are strings with
// the same content. Values of any other type never match, even when they
// print the same.
func matchingPasswords(password, confirmation any) (string, bool) {
	p, ok := password.(string)
	if !ok {
		return "", false
	}
	c, ok := confirmation.(string)
	if !ok || p != c {
		return "", false
	}
	return p, true
}

// stringField reads a present field as a string. Non-string values are
// formatted with fmt.Sprint.
func stringField(body map[string]any, field string) string {
	switch value := body[field].(type) {
	case string:
		return value
	default:
		return fmt.Sprint(value)
	}
}
