package model

import (
	"time"

	"github.com/google/uuid"

	profilemodel "toolindex-backend/internal/domains/profile/model"
	toolmodel "toolindex-backend/internal/domains/tool/model"
)

// Review status lifecycle. Only approved reviews are publicly visible
// and only they count toward a tool's rating aggregate.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Review struct {
	ID     uuid.UUID `json:"id"`
	ToolID uuid.UUID `json:"tool_id"`
	UserID uuid.UUID `json:"user_id"`

	Rating  int     `json:"rating"` // 1-5
	Title   *string `json:"title"`
	Comment *string `json:"comment"`
	Pros    *string `json:"pros"`
	Cons    *string `json:"cons"`

	Status string `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EnrichedReview is a review with its foreign keys resolved for
// display. User or Tool stay nil when the referenced record is gone.
type EnrichedReview struct {
	Review
	User *profilemodel.ProfileSummary `json:"user"`
	Tool *toolmodel.ToolSummary       `json:"tool"`
}
