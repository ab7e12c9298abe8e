package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/messhub/feedback-system/internal/core/domain"
)

const schemaTimeout = 30 * time.Second

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS roles (
		id INT PRIMARY KEY,
		role_name TEXT UNIQUE NOT NULL,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role_id INT NOT NULL DEFAULT 2 REFERENCES roles(id),
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		last_login TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS menu (
		id BIGSERIAL PRIMARY KEY,
		meal_date DATE NOT NULL,
		meal_type TEXT NOT NULL,
		dish_name TEXT NOT NULL,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (meal_date, meal_type, dish_name)
	)`,
	`CREATE TABLE IF NOT EXISTS feedback (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT REFERENCES users(id) ON DELETE CASCADE,
		rating INT NOT NULL CHECK (rating >= 1 AND rating <= 5),
		comment TEXT,
		is_anonymous BOOLEAN NOT NULL DEFAULT FALSE,
		status TEXT NOT NULL DEFAULT 'pending',
		meal_date DATE NOT NULL DEFAULT CURRENT_DATE,
		meal_type TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS ix_users_email ON users (email)`,
	`CREATE INDEX IF NOT EXISTS ix_users_role_id ON users (role_id)`,
	`CREATE INDEX IF NOT EXISTS ix_feedback_user_date ON feedback (user_id, meal_date)`,
	`CREATE INDEX IF NOT EXISTS ix_feedback_rating ON feedback (rating)`,
}

// EnsureSchema creates the tables and indexes if they do not exist and seeds
// the two role rows with their stable identifiers.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, schemaTimeout)
	defer cancel()

	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO roles (id, role_name, description) VALUES
			($1, $2, 'System Administrator'),
			($3, $4, 'Regular User')
		ON CONFLICT (id) DO NOTHING`,
		domain.RoleAdminID, string(domain.RoleAdmin),
		domain.RoleUserID, string(domain.RoleUser),
	)
	if err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	return nil
}
