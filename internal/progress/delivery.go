package progress

import "github.com/labstack/echo/v4"

type Handler interface {
	GetSummary() echo.HandlerFunc
	StreamEvents() echo.HandlerFunc
	GetStats() echo.HandlerFunc
}
