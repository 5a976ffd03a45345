package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/amamam1231/ai-project-312/internal/components"
)

// RegisterRoutes registers the page and contact form routes
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/", h.LandingPage)

	e.POST(components.ContactAction, h.Submit)
	e.POST(components.ContactResetAction, h.Reset)
	e.GET(components.ContactStatePath, h.State)
}
