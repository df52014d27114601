package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"

	"github.com/dubwise/dubwise-backend/pkg/utils"
)

// AuthJWTMiddleware validates the identity provider's bearer token and stores
// the subject id in the request context. There is no local user table; the
// token is the identity.
func (mw *MiddlewareManager) AuthJWTMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		bearerHeader := c.Request().Header.Get("Authorization")

		tokenString := ""
		if bearerHeader != "" {
			headerParts := strings.Split(bearerHeader, " ")
			if len(headerParts) != 2 {
				mw.logger.Error("auth middleware: malformed authorization header")
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}
			tokenString = headerParts[1]
		} else {
			cookie, err := c.Cookie("jwt-token")
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}
			tokenString = cookie.Value
		}

		if err := mw.validateJWTToken(tokenString, c); err != nil {
			mw.logger.Errorf("middleware validateJWTToken: %v", err)
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		}
		return next(c)
	}
}

func (mw *MiddlewareManager) validateJWTToken(tokenString string, c echo.Context) error {
	if tokenString == "" {
		return fmt.Errorf("invalid token string")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(mw.cfg.Server.JwtSecretKey), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return fmt.Errorf("invalid token string")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return fmt.Errorf("invalid jwt claims")
	}
	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		if userID, ok = claims["id"].(string); !ok || userID == "" {
			return fmt.Errorf("invalid jwt claims: missing subject")
		}
	}

	ctx := context.WithValue(c.Request().Context(), utils.UserCtxKey{}, userID)
	c.SetRequest(c.Request().WithContext(ctx))
	return nil
}
