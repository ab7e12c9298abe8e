package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminOnly forbids access unless the verified claims carry the admin role.
// It must run after Auth.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok || !claims.Role.IsAdmin() {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin access required"})
			}
			return next(c)
		}
	}
}
