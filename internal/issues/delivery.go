package issues

import "github.com/labstack/echo/v4"

type Handler interface {
	GetIssues() echo.HandlerFunc
	ResolveIssue() echo.HandlerFunc
	SuggestCorrection() echo.HandlerFunc
}
