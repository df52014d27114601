package http

import (
	"github.com/labstack/echo/v4"

	"github.com/dubwise/dubwise-backend/internal/middleware"
	"github.com/dubwise/dubwise-backend/internal/projects"
)

func MapProjectRoutes(projectGroup *echo.Group, h projects.Handler, mw *middleware.MiddlewareManager) {
	projectGroup.Use(mw.AuthJWTMiddleware)
	projectGroup.POST("", h.CreateProject())
	projectGroup.GET("", h.ListProjects())
	projectGroup.GET("/:project_id", h.GetProject())
	projectGroup.DELETE("/:project_id", h.DeleteProject())
	projectGroup.POST("/:project_id/upload-url", h.GetUploadURL())
	projectGroup.GET("/:project_id/assets", h.GetAssets())
}
