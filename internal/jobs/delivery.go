package jobs

import "github.com/labstack/echo/v4"

type Handler interface {
	CreateJob() echo.HandlerFunc
	GetJob() echo.HandlerFunc
	ListProjectJobs() echo.HandlerFunc
	UpdateStatus() echo.HandlerFunc
}
