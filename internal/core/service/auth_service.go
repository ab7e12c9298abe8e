package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/messhub/feedback-system/internal/core/domain"
	"github.com/messhub/feedback-system/internal/core/ports"
)

// AuthService implements registration, login, and profile lookup.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Register creates a new account with the default "user" role. The raw
// password is hashed with bcrypt and never persisted or logged.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	existing, err := s.users.FindByUsernameOrEmail(ctx, username, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login authenticates by username and password. Unknown, inactive, and
// wrong-password cases all return the same ErrInvalidCredentials so callers
// cannot probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, *ports.TokenPair, error) {
	if username == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("user_id", user.ID).Msg("failed to update last_login")
	}

	pair, err := s.tokens.Issue(user)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("user logged in")
	return user, pair, nil
}

// Profile re-fetches the user by id so the caller sees current state, not
// the claims frozen into the token at issuance.
func (s *AuthService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}
