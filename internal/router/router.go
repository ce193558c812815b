// Package router builds the echo router: global middleware, system routes
// and the versioned API group.
package router

import (
	"github.com/deppfellow/signup/internal/handler"
	"github.com/deppfellow/signup/internal/middleware"
	"github.com/deppfellow/signup/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter wires middleware and routes.
//
// Middleware order matters: the request ID must exist before tracing and
// the context logger read it, and the context logger must exist before the
// request logger and Recover write through it.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	v1 := router.Group("/api/v1")
	registerAccountRoutes(v1, h, middlewares, s.Config.Server.SignupRateLimit)

	return router
}
