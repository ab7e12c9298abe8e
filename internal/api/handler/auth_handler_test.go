package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/messhub/feedback-system/internal/api/middleware"
	"github.com/messhub/feedback-system/internal/core/domain"
	"github.com/messhub/feedback-system/internal/core/ports"
)

type stubAuthService struct {
	registered *domain.User
	loginUser  *domain.User
	loginPair  *ports.TokenPair
	profile    *domain.User
	err        error
}

func (s *stubAuthService) Register(_ context.Context, username, email, password string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.registered = &domain.User{ID: 1, Username: username, Email: email, Role: domain.RoleUser}
	return s.registered, nil
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (*domain.User, *ports.TokenPair, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.loginUser, s.loginPair, nil
}

func (s *stubAuthService) Profile(_ context.Context, userID int64) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func newAuthTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"secret1"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.registered == nil || svc.registered.Username != "alice" {
		t.Fatalf("service not called with expected input: %+v", svc.registered)
	}

	var resp registerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User == nil || resp.User.Email != "alice@example.com" {
		t.Fatalf("unexpected response user: %+v", resp.User)
	}
}

func TestAuthHandler_Register_ValidationFailures(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := []string{
		`{"email":"a@example.com","password":"secret1"}`,
		`{"username":"alice","email":"not-an-email","password":"secret1"}`,
		`{"username":"alice","email":"a@example.com","password":"short"}`,
	}
	for _, body := range cases {
		c, _ := newAuthTestContext(t, http.MethodPost, "/auth/register", body)
		err := h.Register(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %v", body, err)
		}
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrUserExists})

	c, _ := newAuthTestContext(t, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"secret1"}`)

	if err := h.Register(c); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists passed through, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{
		loginUser: &domain.User{ID: 1, Username: "alice", Role: domain.RoleUser},
		loginPair: &ports.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
	}
	h := NewAuthHandler(svc)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/login",
		`{"username":"alice","password":"secret1"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Tokens == nil || resp.Tokens.AccessToken != "access" {
		t.Fatalf("expected token pair in response, got %+v", resp.Tokens)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})

	c, _ := newAuthTestContext(t, http.MethodPost, "/auth/login",
		`{"username":"alice","password":"wrong"}`)

	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials passed through, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	svc := &stubAuthService{profile: &domain.User{ID: 7, Username: "alice", Email: "alice@example.com"}}
	h := NewAuthHandler(svc)

	c, rec := newAuthTestContext(t, http.MethodGet, "/auth/me", "")
	middleware.SetClaims(c, &ports.TokenClaims{UserID: 7, Username: "alice"})

	if err := h.Me(c); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp profileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User == nil || resp.User.ID != 7 {
		t.Fatalf("unexpected profile: %+v", resp.User)
	}
}

func TestAuthHandler_Me_NoClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newAuthTestContext(t, http.MethodGet, "/auth/me", "")

	err := h.Me(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}
