package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/messhub/feedback-system/internal/core/ports"
)

// claimsKey is the echo context key the verified claims are stored under.
const claimsKey = "auth_claims"

// Auth extracts the bearer token, verifies it through the token service, and
// injects the typed claims into the request context. A missing or malformed
// header is 401; a token that fails verification is 403.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "access token required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims injected by Auth, or false when the
// middleware has not run on this request.
func ClaimsFrom(c echo.Context) (*ports.TokenClaims, bool) {
	claims, ok := c.Get(claimsKey).(*ports.TokenClaims)
	return claims, ok
}

// SetClaims injects claims directly, for handler tests that bypass Auth.
func SetClaims(c echo.Context, claims *ports.TokenClaims) {
	c.Set(claimsKey, claims)
}
