package controller

import (
	"context"

	"github.com/deppfellow/signup/internal/model"
)

// Request is an inbound request reduced to its field bag.
type Request struct {
	Body map[string]any
}

// Response is the envelope every controller outcome is normalized into.
// Body holds either a success payload or an *errs.HTTPError.
type Response struct {
	StatusCode int `json:"statusCode"`
	Body       any `json:"body"`
}

// Controller handles one request and always yields a well-formed Response.
type Controller interface {
	Handle(ctx context.Context, req Request) Response
}

// EmailValidator checks the format of an email address.
// A non-nil error means the check itself failed, not that the email is invalid.
type EmailValidator interface {
	IsValid(email string) (bool, error)
}

// AddAccount creates an account and returns its stored representation.
type AddAccount interface {
	Add(ctx context.Context, params model.AddAccountParams) (*model.Account, error)
}
