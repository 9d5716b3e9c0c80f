package repository

import (
	"context"

	"github.com/google/uuid"

	"toolindex-backend/internal/domains/profile/model"
	"toolindex-backend/internal/shared/authz"
)

type ProfileRepository interface {
	// GetByID gets a profile by id
	GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)

	// GetRole reads the current role for authorization checks
	GetRole(ctx context.Context, userID uuid.UUID) (authz.Role, error)

	// GetSummaries batch-fetches display summaries for enrichment
	GetSummaries(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.ProfileSummary, error)
}
