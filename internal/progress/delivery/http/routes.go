package http

import (
	"github.com/labstack/echo/v4"

	"github.com/dubwise/dubwise-backend/internal/middleware"
	"github.com/dubwise/dubwise-backend/internal/progress"
)

func MapProgressRoutes(progressGroup *echo.Group, h progress.Handler, mw *middleware.MiddlewareManager) {
	// The SSE stream authenticates via query token in browsers, so it stays
	// outside the JWT group.
	progressGroup.GET("/events", h.StreamEvents())
	progressGroup.GET("/stats", h.GetStats())
	progressGroup.GET("/:project_id", h.GetSummary(), mw.AuthJWTMiddleware)
}
