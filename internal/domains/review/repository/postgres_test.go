package repository

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("wrapped unique violation matches", func(t *testing.T) {
		err := fmt.Errorf("failed to create review: %w", &pgconn.PgError{
			Code:           "23505",
			ConstraintName: "reviews_tool_id_user_id_key",
		})
		assert.True(t, isUniqueViolation(err))
	})

	t.Run("non-constraint error does not match", func(t *testing.T) {
		assert.False(t, isUniqueViolation(fmt.Errorf("context canceled")))
	})
}
