package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/messhub/feedback-system/internal/core/domain"
	"github.com/messhub/feedback-system/internal/core/ports"
)

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByUsernameOrEmail(_ context.Context, username, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	copy := cloneUser(user)
	copy.ID = r.nextID
	r.nextID++
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) TouchLastLogin(_ context.Context, id int64) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	now := time.Now()
	u.LastLogin = &now
	return nil
}

func newTestAuthService(repo ports.UserRepository) *AuthService {
	tokens := NewTokenService("test-secret", time.Hour, 2*time.Hour)
	return NewAuthService(repo, tokens, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id, got 0")
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	cases := [][3]string{
		{"", "a@example.com", "pass"},
		{"alice", "", "pass"},
		{"alice", "a@example.com", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Register(context.Background(), tc[0], tc[1], tc[2]); err != domain.ErrMissingFields {
			t.Fatalf("expected ErrMissingFields for %v, got %v", tc, err)
		}
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "bob", "bob@example.com", "pass"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "other@example.com", "pass"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists for duplicate username, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "robert", "bob@example.com", "pass"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists for duplicate email, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "carol", "carol@example.com", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, pair, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected token pair, got %+v", pair)
	}

	stored, err := repo.FindByUsername(context.Background(), "carol")
	if err != nil {
		t.Fatalf("find after login: %v", err)
	}
	if stored.LastLogin == nil {
		t.Fatalf("expected last_login to be stamped")
	}
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, _ = svc.Register(context.Background(), "dave", "dave@example.com", "goodpass")

	// Wrong password and unknown username must be indistinguishable.
	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "ghost", "goodpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty input, got %v", err)
	}
}

func TestAuthService_Profile(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	created, err := svc.Register(context.Background(), "erin", "erin@example.com", "pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	got, err := svc.Profile(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	if got.Username != "erin" || got.Email != "erin@example.com" {
		t.Fatalf("unexpected profile: %+v", got)
	}

	if _, err := svc.Profile(context.Background(), 9999); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
