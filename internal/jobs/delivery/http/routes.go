package http

import (
	"github.com/labstack/echo/v4"

	"github.com/dubwise/dubwise-backend/internal/jobs"
	"github.com/dubwise/dubwise-backend/internal/middleware"
)

func MapJobRoutes(jobGroup *echo.Group, h jobs.Handler, mw *middleware.MiddlewareManager) {
	jobGroup.POST("", h.CreateJob(), mw.AuthJWTMiddleware)
	jobGroup.GET("/:job_id", h.GetJob())
	jobGroup.GET("/projects/:project_id", h.ListProjectJobs(), mw.AuthJWTMiddleware)
	// Worker callback endpoint: workers authenticate at the network layer,
	// not with user tokens.
	jobGroup.POST("/:job_id/status", h.UpdateStatus())
}
