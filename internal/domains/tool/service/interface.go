package service

import (
	"context"

	"github.com/google/uuid"

	"toolindex-backend/internal/domains/tool/model"
)

// =====================================================
// TOOL SERVICE INTERFACE
// =====================================================

type ToolService interface {
	// Submit creates a pending tool on behalf of a user
	Submit(ctx context.Context, userID uuid.UUID, req model.SubmitToolRequest) (*model.Tool, error)

	// GetBySlug returns an approved tool and bumps its view counter
	GetBySlug(ctx context.Context, slug string) (*model.Tool, error)

	// ListApproved lists the public directory
	ListApproved(ctx context.Context, q model.ListToolsQuery) ([]*model.Tool, int64, error)

	// ListPending lists the moderation queue
	ListPending(ctx context.Context) ([]*model.Tool, error)

	// ListSubmissions lists a user's own submissions, any status
	ListSubmissions(ctx context.Context, userID uuid.UUID) ([]*model.Tool, error)

	// Approve moves a pending tool to approved. Paid listings come out
	// featured.
	Approve(ctx context.Context, id, approvedBy uuid.UUID) error

	// Reject moves a pending tool to rejected
	Reject(ctx context.Context, id uuid.UUID) error

	// Archive retires an approved tool
	Archive(ctx context.Context, id uuid.UUID) error

	// ToggleFeatured inverts the featured flag of an approved tool and
	// returns the new value
	ToggleFeatured(ctx context.Context, id uuid.UUID) (bool, error)

	// RecomputeRating refreshes the tool's rating aggregate from its
	// approved reviews
	RecomputeRating(ctx context.Context, toolID uuid.UUID) error
}

// ApprovedRatingsReader supplies the rating values that count toward
// a tool's aggregate.
type ApprovedRatingsReader interface {
	ApprovedRatings(ctx context.Context, toolID uuid.UUID) ([]int, error)
}
