package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/messhub/feedback-system/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       42,
		Username: "alice",
		Email:    "alice@example.com",
		Role:     domain.RoleAdmin,
	}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, 2*time.Hour)

	pair, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", pair)
	}
	if pair.AccessToken == pair.RefreshToken {
		t.Fatalf("access and refresh tokens must differ")
	}

	claims, err := svc.Verify(pair.AccessToken)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Fatalf("unexpected username: %s", claims.Username)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := NewTokenService("secret", -time.Minute, time.Hour)

	pair, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Verify(pair.AccessToken); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour, time.Hour)
	verifier := NewTokenService("secret-b", time.Hour, time.Hour)

	pair, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(pair.AccessToken); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenService_Verify_WrongAlgorithm(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, time.Hour)

	// "none" signed tokens must never verify even with a matching payload.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, accessClaims{
		UserID:   42,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for alg=none, got %v", err)
	}
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	svc := NewTokenService("secret", time.Hour, time.Hour)
	if _, err := svc.Verify("not-a-token"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_DefaultTTLs(t *testing.T) {
	svc := NewTokenService("secret", 0, 0)
	if svc.accessTTL != defaultAccessTTL {
		t.Fatalf("expected default access TTL, got %v", svc.accessTTL)
	}
	if svc.refreshTTL != defaultRefreshTTL {
		t.Fatalf("expected default refresh TTL, got %v", svc.refreshTTL)
	}
}
