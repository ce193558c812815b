package router

import (
	"github.com/deppfellow/signup/internal/handler"
	"github.com/deppfellow/signup/internal/middleware"
	"github.com/labstack/echo/v4"
)

// registerAccountRoutes registers account creation, rate limited per client
// IP at perSecond requests per second.
func registerAccountRoutes(g *echo.Group, h *handler.Handlers, m *middleware.Middlewares, perSecond float64) {
	g.POST("/signup", h.SignUp.SignUp(), m.RateLimit.Limit(perSecond))
}
