package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/messhub/feedback-system/internal/api/middleware"
	"github.com/messhub/feedback-system/internal/core/ports"
)

// ctxClaims extracts the claims injected by the Auth middleware. Their
// presence proves the middleware ran; a protected handler reached without
// them is a routing mistake, rejected with 401.
func ctxClaims(c echo.Context) (*ports.TokenClaims, error) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
