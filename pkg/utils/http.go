package utils

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
)

type UserCtxKey struct{}

// GetUserIDFromCtx returns the identity-provider user id stored by the auth middleware.
func GetUserIDFromCtx(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(UserCtxKey{}).(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user not found in context")
	}
	return userID, nil
}

func GetRequestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

func GetIPAddress(c echo.Context) string {
	return c.Request().RemoteAddr
}
