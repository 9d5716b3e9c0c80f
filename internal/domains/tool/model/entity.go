package model

import (
	"time"

	"github.com/google/uuid"
)

// Tool is a directory listing.
type Tool struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Tagline     string    `json:"tagline"`
	Description string    `json:"description"`
	WebsiteURL  string    `json:"website_url"`
	LogoURL     *string   `json:"logo_url"`
	Screenshots []string  `json:"screenshots"`

	PricingType string `json:"pricing_type"`
	ListingType string `json:"listing_type"`

	// Aggregate over approved reviews only. Stays stale when the last
	// approved review disappears.
	RatingAvg   float64 `json:"rating_avg"`
	RatingCount int     `json:"rating_count"`

	ViewsCount     int `json:"views_count"`
	FavoritesCount int `json:"favorites_count"`

	Status     string     `json:"status"`
	IsFeatured bool       `json:"is_featured"`

	SubmittedBy uuid.UUID  `json:"submitted_by"`
	ApprovedBy  *uuid.UUID `json:"approved_by"`
	ApprovedAt  *time.Time `json:"approved_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsApproved reports whether the tool is publicly visible.
func (t *Tool) IsApproved() bool {
	return t.Status == StatusApproved
}

// ToolSummary is the subset attached to enriched listings.
type ToolSummary struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Slug    string    `json:"slug"`
	LogoURL *string   `json:"logo_url"`
}
