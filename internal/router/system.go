package router

import (
	"github.com/deppfellow/signup/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the API:
// health, the docs UI and the static files it loads.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)
	r.Static("/static", handler.DefaultStaticDir)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
