package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/messhub/feedback-system/internal/core/domain"
)

func invokeErrorHandler(t *testing.T, err error, dev bool) (*httptest.ResponseRecorder, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop(), dev)(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return rec, body.Error
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrMissingFields, http.StatusBadRequest},
		{domain.ErrInvalidRating, http.StatusBadRequest},
		{domain.ErrInvalidMealType, http.StatusBadRequest},
		{domain.ErrInvalidStatus, http.StatusBadRequest},
		{domain.ErrInvalidDay, http.StatusBadRequest},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrInvalidToken, http.StatusForbidden},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrFeedbackNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrStorageUnavailable, http.StatusServiceUnavailable},
		{domain.ErrRoleNotConfigured, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec, _ := invokeErrorHandler(t, tc.err, false)
		if rec.Code != tc.code {
			t.Fatalf("expected %d for %v, got %d", tc.code, tc.err, rec.Code)
		}
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("update status: %w", domain.ErrFeedbackNotFound)
	rec, _ := invokeErrorHandler(t, wrapped, false)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for wrapped error, got %d", rec.Code)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	rec, msg := invokeErrorHandler(t, echo.NewHTTPError(http.StatusTeapot, "short and stout"), false)
	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rec.Code)
	}
	if msg != "short and stout" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	cause := errors.New("disk exploded")

	rec, msg := invokeErrorHandler(t, cause, false)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if msg != "internal server error" {
		t.Fatalf("production mode must not leak the cause, got %q", msg)
	}

	_, devMsg := invokeErrorHandler(t, cause, true)
	if devMsg != "disk exploded" {
		t.Fatalf("development mode should include the cause, got %q", devMsg)
	}
}

func TestErrorHandler_UniformLoginError(t *testing.T) {
	// Unknown-user and wrong-password failures surface identically.
	_, msg := invokeErrorHandler(t, domain.ErrInvalidCredentials, false)
	if msg != "invalid credentials" {
		t.Fatalf("unexpected message: %q", msg)
	}
}
