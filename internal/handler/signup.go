package handler

import (
	"github.com/deppfellow/signup/internal/controller"
	"github.com/deppfellow/signup/internal/server"
	"github.com/labstack/echo/v4"
)

// SignUpHandler serves account creation.
type SignUpHandler struct {
	Handler
	controller controller.Controller
}

func NewSignUpHandler(s *server.Server, ctrl controller.Controller) *SignUpHandler {
	return &SignUpHandler{
		Handler:    NewHandler(s),
		controller: ctrl,
	}
}

// SignUp handles POST /api/v1/signup.
func (h *SignUpHandler) SignUp() echo.HandlerFunc {
	return HandleController(h.Handler, h.controller)
}
