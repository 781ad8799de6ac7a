package middleware

import (
	"context"
	"errors"
	"net/http"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type contextKey string

const adminUserKey contextKey = "adminUser"

var errUnauthorized = errors.New("unauthorized")

// ContextWithAdminUser returns a context carrying the signed-in admin
// username. Intended for middleware and tests.
func ContextWithAdminUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, adminUserKey, username)
}

func GetAdminUserFromContext(ctx context.Context) (string, error) {
	v := ctx.Value(adminUserKey)
	if v == nil {
		return "", errUnauthorized
	}

	username, ok := v.(string)
	if !ok || username == "" {
		return "", errUnauthorized
	}
	return username, nil
}

// RequireAdmin runs after the echo-jwt middleware has parsed the token. It
// rejects tokens that carry no admin role and stashes the username on the
// request context.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwtv5.Token)
			if !ok || token == nil {
				return reject(c)
			}

			claims, ok := token.Claims.(jwtv5.MapClaims)
			if !ok {
				return reject(c)
			}

			if role, _ := claims["role"].(string); role != "admin" {
				return reject(c)
			}

			username, _ := claims["sub"].(string)
			ctx := ContextWithAdminUser(c.Request().Context(), username)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func reject(c echo.Context) error {
	msg := "unauthorized"
	return c.JSON(http.StatusUnauthorized, map[string]any{
		"success": false,
		"data":    nil,
		"error":   msg,
	})
}
