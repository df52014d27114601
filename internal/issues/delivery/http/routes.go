package http

import (
	"github.com/labstack/echo/v4"

	"github.com/dubwise/dubwise-backend/internal/issues"
	"github.com/dubwise/dubwise-backend/internal/middleware"
)

func MapIssueRoutes(issueGroup *echo.Group, h issues.Handler, mw *middleware.MiddlewareManager) {
	issueGroup.Use(mw.AuthJWTMiddleware)
	issueGroup.GET("/projects/:project_id", h.GetIssues())
	issueGroup.PATCH("/:issue_id", h.ResolveIssue())
	issueGroup.POST("/segments/:segment_id/suggest", h.SuggestCorrection())
}
