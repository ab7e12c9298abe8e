package ports

import (
	"context"

	"github.com/messhub/feedback-system/internal/core/domain"
)

// AuthService implements the registration and login workflow.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, *TokenPair, error)
	// Profile re-fetches the user by id so the response reflects current
	// state rather than token claims.
	Profile(ctx context.Context, userID int64) (*domain.User, error)
}
