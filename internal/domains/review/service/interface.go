package service

import (
	"context"

	"github.com/google/uuid"

	"toolindex-backend/internal/domains/review/model"
)

// =====================================================
// REVIEW SERVICE INTERFACE
// =====================================================

type ReviewService interface {
	// Create creates a pending review on behalf of a user
	Create(ctx context.Context, userID uuid.UUID, req model.CreateReviewRequest) (*model.Review, error)

	// ListApprovedByTool lists a tool's approved reviews with author
	// display data attached
	ListApprovedByTool(ctx context.Context, toolID uuid.UUID) ([]*model.EnrichedReview, error)

	// ListForAdmin lists reviews for the moderation queue, enriched
	// with author and tool display data
	ListForAdmin(ctx context.Context, q model.AdminListReviewsQuery) ([]*model.EnrichedReview, int64, error)

	// Approve publishes a review and refreshes the tool's rating
	// aggregate
	Approve(ctx context.Context, id uuid.UUID) error

	// Reject hides a review. No aggregate recompute: rejected reviews
	// never counted.
	Reject(ctx context.Context, id uuid.UUID) error
}

// RatingAggregator refreshes a tool's rating aggregate after the
// approved review set changes.
type RatingAggregator interface {
	RecomputeRating(ctx context.Context, toolID uuid.UUID) error
}
