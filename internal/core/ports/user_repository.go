package ports

import (
	"context"

	"github.com/messhub/feedback-system/internal/core/domain"
)

// UserRepository defines persistence operations for user credentials.
type UserRepository interface {
	// FindByUsernameOrEmail matches either field regardless of active flag.
	// Used for duplicate detection during registration.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)
	// Create persists a new user. The role name on the user is resolved to
	// its stored id; a missing role row yields domain.ErrRoleNotConfigured,
	// a duplicate username or email yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByID returns the active user with the given id.
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// FindByUsername returns the active user with the given username.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// TouchLastLogin stamps the user's last_login with the current time.
	TouchLastLogin(ctx context.Context, id int64) error
}
