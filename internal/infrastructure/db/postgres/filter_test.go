package postgres

import (
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/messhub/feedback-system/internal/core/domain"
)

func TestWhereBuilder_Empty(t *testing.T) {
	var b whereBuilder
	assert.Equal(t, "", b.clause())
	assert.Empty(t, b.args)
}

func TestWhereBuilder_SingleCondition(t *testing.T) {
	var b whereBuilder
	b.add("f.rating", "=", 4)

	assert.Equal(t, " WHERE f.rating = $1", b.clause())
	assert.Equal(t, []any{4}, b.args)
}

func TestWhereBuilder_MultipleConditions(t *testing.T) {
	var b whereBuilder
	b.add("f.meal_date", ">=", "2026-08-01")
	b.add("f.meal_date", "<=", "2026-08-31")
	b.add("f.meal_type", "=", domain.MealLunch)

	assert.Equal(t, " WHERE f.meal_date >= $1 AND f.meal_date <= $2 AND f.meal_type = $3", b.clause())
	assert.Len(t, b.args, 3)
}

func TestWhereBuilder_BindContinuesNumbering(t *testing.T) {
	var b whereBuilder
	b.add("f.status", "=", domain.StatusPending)

	limitPlaceholder := b.bind(50)
	offsetPlaceholder := b.bind(10)

	assert.Equal(t, "$2", limitPlaceholder)
	assert.Equal(t, "$3", offsetPlaceholder)
	assert.Equal(t, []any{domain.StatusPending, 50, 10}, b.args)
}

func TestWhereBuilder_ValuesNeverInterpolated(t *testing.T) {
	var b whereBuilder
	hostile := "'; DROP TABLE feedback; --"
	b.add("u.username", "=", hostile)

	assert.NotContains(t, b.clause(), hostile)
	assert.Equal(t, []any{hostile}, b.args)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: uniqueViolationCode}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolationCode})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("plain error")))
	assert.False(t, isUniqueViolation(nil))
}

func TestStorageErr(t *testing.T) {
	assert.NoError(t, storageErr(nil))

	var netErr net.Error = &net.OpError{Op: "dial", Err: errors.New("refused")}
	assert.ErrorIs(t, storageErr(netErr), domain.ErrStorageUnavailable)

	plain := errors.New("constraint violated")
	assert.Equal(t, plain, storageErr(plain))
}
