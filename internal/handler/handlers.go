// Package handler is the HTTP layer, the first entry point after the router.
//
// It decodes requests, hands them to controllers or services, and writes
// their responses. Error responses are rendered by the global error handler.
package handler

import (
	"github.com/deppfellow/signup/internal/controller"
	"github.com/deppfellow/signup/internal/server"
	"github.com/deppfellow/signup/internal/service"
	"github.com/deppfellow/signup/internal/validation"
)

// Handlers groups all HTTP handlers so the router receives a single value.
type Handlers struct {
	SignUp  *SignUpHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	signUp := controller.NewSignUpController(validation.NewEmailValidator(nil), services.Account)

	return &Handlers{
		SignUp:  NewSignUpHandler(s, signUp),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
