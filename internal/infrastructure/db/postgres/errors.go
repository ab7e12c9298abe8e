package postgres

import (
	"database/sql/driver"
	"errors"
	"net"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/messhub/feedback-system/internal/core/domain"
)

const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation, the storage-level signal for a duplicate username or email.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// storageErr maps connectivity failures to domain.ErrStorageUnavailable so
// every dependent operation fails fast with the same kind, and passes all
// other errors through untouched.
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.As(err, &netErr) {
		return domain.ErrStorageUnavailable
	}
	return err
}
