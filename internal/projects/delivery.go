package projects

import "github.com/labstack/echo/v4"

type Handler interface {
	CreateProject() echo.HandlerFunc
	GetProject() echo.HandlerFunc
	ListProjects() echo.HandlerFunc
	DeleteProject() echo.HandlerFunc
	GetUploadURL() echo.HandlerFunc
	GetAssets() echo.HandlerFunc
}
