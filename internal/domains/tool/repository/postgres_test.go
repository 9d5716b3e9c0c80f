package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("pgx unique violation matches", func(t *testing.T) {
		err := &pgconn.PgError{Code: "23505", ConstraintName: "tools_slug_key"}
		assert.True(t, isUniqueViolation(err))
	})

	t.Run("wrapped unique violation matches", func(t *testing.T) {
		err := fmt.Errorf("exec failed: %w", &pgconn.PgError{Code: "23505"})
		assert.True(t, isUniqueViolation(err))
	})

	t.Run("other pg error does not match", func(t *testing.T) {
		err := &pgconn.PgError{Code: "23503"}
		assert.False(t, isUniqueViolation(err))
	})

	t.Run("plain error does not match", func(t *testing.T) {
		assert.False(t, isUniqueViolation(errors.New("connection reset")))
	})
}
