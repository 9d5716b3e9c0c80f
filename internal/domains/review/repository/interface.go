package repository

import (
	"context"

	"github.com/google/uuid"

	"toolindex-backend/internal/domains/review/model"
)

// =====================================================
// REVIEW REPOSITORY INTERFACE
// =====================================================

type ReviewRepository interface {
	// Create creates a new review in pending status
	Create(ctx context.Context, review *model.Review) error

	// GetByID gets review by ID
	GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error)

	// ListApprovedByTool lists approved reviews for a tool, newest first
	ListApprovedByTool(ctx context.Context, toolID uuid.UUID) ([]*model.Review, error)

	// ListForAdmin lists reviews with optional status/tool filters
	ListForAdmin(ctx context.Context, q model.AdminListReviewsQuery) ([]*model.Review, int64, error)

	// SetStatus updates a review's moderation status
	SetStatus(ctx context.Context, id uuid.UUID, status string) error

	// ApprovedRatings returns the rating values of all approved
	// reviews for a tool, for the aggregate recompute
	ApprovedRatings(ctx context.Context, toolID uuid.UUID) ([]int, error)

	// CountByStatus counts reviews per status for admin stats
	CountByStatus(ctx context.Context, status string) (int64, error)
}
