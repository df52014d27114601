package segments

import "github.com/labstack/echo/v4"

type Handler interface {
	GetSegments() echo.HandlerFunc
	BulkUpdateSegments() echo.HandlerFunc
}
