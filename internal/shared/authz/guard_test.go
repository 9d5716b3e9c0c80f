package authz

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRoleReader struct {
	mock.Mock
}

func (m *MockRoleReader) GetRole(ctx context.Context, userID uuid.UUID) (Role, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(Role), args.Error(1)
}

func TestGuard_Authorize(t *testing.T) {
	t.Run("anonymous caller", func(t *testing.T) {
		guard := NewGuard(new(MockRoleReader))

		err := guard.Authorize(context.Background(), nil, RoleAdmin)

		assert.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("plain user cannot reach staff surfaces", func(t *testing.T) {
		reader := new(MockRoleReader)
		guard := NewGuard(reader)

		id := uuid.New()
		reader.On("GetRole", mock.Anything, id).Return(RoleUser, nil)

		err := guard.Authorize(context.Background(), &id, RoleAdmin, RoleModerator)

		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("moderator passes a staff check", func(t *testing.T) {
		reader := new(MockRoleReader)
		guard := NewGuard(reader)

		id := uuid.New()
		reader.On("GetRole", mock.Anything, id).Return(RoleModerator, nil)

		err := guard.Authorize(context.Background(), &id, RoleAdmin, RoleModerator)

		assert.NoError(t, err)
	})

	t.Run("moderator is not admin", func(t *testing.T) {
		reader := new(MockRoleReader)
		guard := NewGuard(reader)

		id := uuid.New()
		reader.On("GetRole", mock.Anything, id).Return(RoleModerator, nil)

		err := guard.Authorize(context.Background(), &id, RoleAdmin)

		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("store failure is not a forbidden", func(t *testing.T) {
		reader := new(MockRoleReader)
		guard := NewGuard(reader)

		id := uuid.New()
		reader.On("GetRole", mock.Anything, id).Return(RoleUser, errors.New("connection refused"))

		err := guard.Authorize(context.Background(), &id, RoleAdmin)

		assert.ErrorIs(t, err, ErrProfileLookupFailed)
		assert.NotErrorIs(t, err, ErrForbidden)
	})
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleModerator, ParseRole("moderator"))
	assert.Equal(t, RoleUser, ParseRole("user"))
	// Unknown strings carry no privileges.
	assert.Equal(t, RoleUser, ParseRole("superuser"))
	assert.Equal(t, RoleUser, ParseRole(""))
}

func TestRole_IsStaff(t *testing.T) {
	assert.True(t, RoleAdmin.IsStaff())
	assert.True(t, RoleModerator.IsStaff())
	assert.False(t, RoleUser.IsStaff())
}
