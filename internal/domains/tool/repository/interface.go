package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"toolindex-backend/internal/domains/tool/model"
)

// =====================================================
// TOOL REPOSITORY INTERFACE
// =====================================================

type ToolRepository interface {
	// Create creates a new tool in pending status
	Create(ctx context.Context, tool *model.Tool) error

	// GetByID gets tool by ID regardless of status
	GetByID(ctx context.Context, id uuid.UUID) (*model.Tool, error)

	// GetBySlug gets an approved tool by slug
	GetBySlug(ctx context.Context, slug string) (*model.Tool, error)

	// ListApproved lists approved tools with filters
	ListApproved(ctx context.Context, q model.ListToolsQuery) ([]*model.Tool, int64, error)

	// ListPending lists tools awaiting moderation, oldest first
	ListPending(ctx context.Context) ([]*model.Tool, error)

	// ListBySubmitter lists a user's own submissions, any status
	ListBySubmitter(ctx context.Context, userID uuid.UUID) ([]*model.Tool, error)

	// Approve moves pending -> approved, recording who and when.
	// forceFeatured also sets is_featured in the same update.
	// Returns false when the tool was not in pending status.
	Approve(ctx context.Context, id, approvedBy uuid.UUID, approvedAt time.Time, forceFeatured bool) (bool, error)

	// Reject moves pending -> rejected. Returns false when the tool
	// was not in pending status.
	Reject(ctx context.Context, id uuid.UUID) (bool, error)

	// Archive moves approved -> archived. Returns false when the tool
	// was not in approved status.
	Archive(ctx context.Context, id uuid.UUID) (bool, error)

	// ToggleFeatured inverts the featured flag while approved and
	// returns the new value. matched is false when the tool was not
	// in approved status.
	ToggleFeatured(ctx context.Context, id uuid.UUID) (featured, matched bool, err error)

	// UpdateRatingAggregate writes both aggregate columns in one update
	UpdateRatingAggregate(ctx context.Context, id uuid.UUID, avg float64, count int) error

	// IncrementViews bumps the view counter
	IncrementViews(ctx context.Context, id uuid.UUID) error

	// GetSummaries batch-fetches display summaries for enrichment
	GetSummaries(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.ToolSummary, error)

	// CountByStatus counts tools per status for admin stats
	CountByStatus(ctx context.Context, status string) (int64, error)
}
