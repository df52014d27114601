package http

import (
	"github.com/labstack/echo/v4"

	"github.com/dubwise/dubwise-backend/internal/middleware"
	"github.com/dubwise/dubwise-backend/internal/segments"
)

func MapSegmentRoutes(segmentGroup *echo.Group, h segments.Handler, mw *middleware.MiddlewareManager) {
	segmentGroup.Use(mw.AuthJWTMiddleware)
	segmentGroup.GET("/:project_id/segments", h.GetSegments())
	segmentGroup.PUT("/:project_id/segments", h.BulkUpdateSegments())
}
