package controller

import (
	"net/http"

	"github.com/deppfellow/signup/internal/errs"
)

// BadRequest wraps a parameter error in a 400 response.
func BadRequest(err *errs.HTTPError) Response {
	return Response{
		StatusCode: http.StatusBadRequest,
		Body:       err,
	}
}

// ServerError builds a 500 response. The body is the generic server fault.
func ServerError() Response {
	return Response{
		StatusCode: http.StatusInternalServerError,
		Body:       errs.NewInternalServerError(),
	}
}

// OK wraps payload, unchanged, in a 200 response.
func OK(payload any) Response {
	return Response{
		StatusCode: http.StatusOK,
		Body:       payload,
	}
}
