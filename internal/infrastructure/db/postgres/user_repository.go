package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/messhub/feedback-system/internal/core/domain"
)

// UserRepository implements ports.UserRepository on PostgreSQL.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `u.id, u.username, u.email, u.password_hash, r.role_name, u.is_active, u.created_at, u.last_login`

const selectUser = `SELECT ` + userColumns + ` FROM users u JOIN roles r ON r.id = u.role_id `

func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, selectUser+`WHERE u.username = $1 OR u.email = $2`, username, email)
	return scanUser(row)
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, selectUser+`WHERE u.id = $1 AND u.is_active`, id)
	return scanUser(row)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, selectUser+`WHERE u.username = $1 AND u.is_active`, username)
	return scanUser(row)
}

// Create resolves the user's role name to its stored id, then inserts the
// record. The unique indexes on username and email are the authoritative
// duplicate check.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	var roleID int
	err := r.db.QueryRowContext(ctx, `SELECT id FROM roles WHERE role_name = $1`, string(user.Role)).Scan(&roleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoleNotConfigured
		}
		return nil, storageErr(fmt.Errorf("resolve role: %w", err))
	}

	created := *user
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, password_hash, role_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_active, created_at`,
		user.Username, user.Email, user.PasswordHash, roleID,
	).Scan(&created.ID, &created.IsActive, &created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		return nil, storageErr(fmt.Errorf("insert user: %w", err))
	}

	return &created, nil
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET last_login = NOW() WHERE id = $1`, id)
	return storageErr(err)
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var (
		u         domain.User
		roleName  string
		lastLogin sql.NullTime
	)
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &roleName, &u.IsActive, &u.CreatedAt, &lastLogin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, storageErr(fmt.Errorf("scan user: %w", err))
	}

	u.Role = domain.Role(roleName)
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	return &u, nil
}
