package authz

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// =====================================================
// ERRORS
// =====================================================

var (
	// ErrUnauthenticated means no caller identity was presented.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden means the caller's role is not in the allowed set.
	ErrForbidden = errors.New("insufficient role")

	// ErrProfileLookupFailed means the caller's role could not be
	// determined because the profile store errored. Handlers map this
	// to 503, never 403.
	ErrProfileLookupFailed = errors.New("profile lookup failed")
)

// ProfileRoleReader resolves a caller's current role from storage.
// The role is read fresh on every check so revocations take effect
// immediately, without waiting for token expiry.
type ProfileRoleReader interface {
	GetRole(ctx context.Context, userID uuid.UUID) (Role, error)
}

// Guard performs role checks against live profile data.
type Guard struct {
	profiles ProfileRoleReader
}

func NewGuard(profiles ProfileRoleReader) *Guard {
	return &Guard{profiles: profiles}
}

// Authorize checks that the caller exists and holds one of the allowed
// roles. A nil callerID yields ErrUnauthenticated. A storage failure
// yields ErrProfileLookupFailed wrapped around the cause.
func (g *Guard) Authorize(ctx context.Context, callerID *uuid.UUID, allowed ...Role) error {
	if callerID == nil {
		return ErrUnauthenticated
	}

	role, err := g.profiles.GetRole(ctx, *callerID)
	if err != nil {
		return errors.Join(ErrProfileLookupFailed, err)
	}

	for _, a := range allowed {
		if role == a {
			return nil
		}
	}

	return ErrForbidden
}

// Role returns the caller's current role, for callers that branch on
// it rather than gate on it.
func (g *Guard) Role(ctx context.Context, callerID *uuid.UUID) (Role, error) {
	if callerID == nil {
		return RoleUser, ErrUnauthenticated
	}
	role, err := g.profiles.GetRole(ctx, *callerID)
	if err != nil {
		return RoleUser, errors.Join(ErrProfileLookupFailed, err)
	}
	return role, nil
}
