package errs

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMissingParamError(t *testing.T) {
	err := NewMissingParamError("name")

	assert.Equal(t, CodeMissingParam, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "Missing param: name", err.Error())
	assert.Equal(t, "name", err.Field())
	assert.True(t, err.Override)
}

func TestNewInvalidParamError(t *testing.T) {
	err := NewInvalidParamError("passwordConfirmation")

	assert.Equal(t, CodeInvalidParam, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "Invalid param: passwordConfirmation", err.Message)
	assert.Equal(t, []FieldError{{Field: "passwordConfirmation", Error: "is invalid"}}, err.Errors)
}

func TestNewInternalServerError_HasNoField(t *testing.T) {
	err := NewInternalServerError()

	assert.Equal(t, "INTERNAL_SERVER_ERROR", err.Code)
	assert.Equal(t, "Internal Server Error", err.Message)
	assert.Empty(t, err.Field())
	assert.Nil(t, err.Errors)
}

func TestHTTPError_As(t *testing.T) {
	var target *HTTPError
	wrapped := errors.Join(errors.New("context"), NewMissingParamError("email"))

	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "email", target.Field())
}

func TestHTTPError_DistinctErrorsDoNotMatch(t *testing.T) {
	missing := NewMissingParamError("email")

	assert.False(t, errors.Is(missing, NewInternalServerError()))
	assert.False(t, errors.Is(missing, NewInvalidParamError("email")))
	assert.False(t, errors.Is(missing, NewMissingParamError("email")))
	assert.True(t, errors.Is(missing, missing))
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "TOO_MANY_REQUESTS", MakeUpperCaseWithUnderscores("Too Many Requests"))
}

func TestNewBadRequestError_Action(t *testing.T) {
	action := &Action{Type: "redirect", Message: "Sign in instead", Value: "/login"}
	err := NewBadRequestError("Account exists", true, nil, nil, action)

	body, marshalErr := json.Marshal(err)
	assert.NoError(t, marshalErr)
	assert.JSONEq(t, `{
		"code": "BAD_REQUEST",
		"message": "Account exists",
		"status": 400,
		"override": true,
		"errors": null,
		"action": {"type": "redirect", "message": "Sign in instead", "value": "/login"}
	}`, string(body))

	body, marshalErr = json.Marshal(NewInvalidParamError("email"))
	assert.NoError(t, marshalErr)
	assert.Contains(t, string(body), `"action":null`)
}
