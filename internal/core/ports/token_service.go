package ports

import "github.com/messhub/feedback-system/internal/core/domain"

// TokenClaims is the decoded payload of a verified access token. Claims are
// trusted as-of-issuance; there is no revocation list.
type TokenClaims struct {
	UserID   int64
	Username string
	Email    string
	Role     domain.Role
}

// TokenPair is returned on login. The refresh token carries only the user id
// and a type marker; no exchange endpoint exists, expiry is the sole
// invalidation path for both tokens.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	Issue(user *domain.User) (*TokenPair, error)
	// Verify returns domain.ErrInvalidToken when the signature does not
	// verify or the token is expired.
	Verify(token string) (*TokenClaims, error)
}
