package domain

import (
	"errors"
	"time"
)

// Role is a named permission class. The system knows exactly two.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Stable storage identifiers for the two roles, seeded at schema creation.
const (
	RoleAdminID = 1
	RoleUserID  = 2
)

var ErrUserExists = errors.New("user already exists with this username or email")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid or expired token")
var ErrMissingFields = errors.New("username, email, and password are required")
var ErrRoleNotConfigured = errors.New("default user role not configured")

// IsAdmin reports whether the role grants administrative access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// ID returns the stable storage identifier for the role.
func (r Role) ID() int {
	if r == RoleAdmin {
		return RoleAdminID
	}
	return RoleUserID
}

// RoleByID maps a stored role id back to its named role.
func RoleByID(id int) (Role, bool) {
	switch id {
	case RoleAdminID:
		return RoleAdmin, true
	case RoleUserID:
		return RoleUser, true
	}
	return "", false
}

// User models an authenticated actor in the system.
type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}
