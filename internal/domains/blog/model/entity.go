package model

import (
	"time"

	"github.com/google/uuid"

	profilemodel "toolindex-backend/internal/domains/profile/model"
)

// Post status lifecycle.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

type Post struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	CoverURL    *string    `json:"cover_url"`
	Status      string     `json:"status"`
	AuthorID    uuid.UUID  `json:"author_id"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Comment struct {
	ID      uuid.UUID `json:"id"`
	PostID  uuid.UUID `json:"post_id"`
	UserID  uuid.UUID `json:"user_id"`
	Content string    `json:"content"`

	// Plain counter. Repeated likes from the same user all count.
	LikesCount int `json:"likes_count"`

	CreatedAt time.Time `json:"created_at"`
}

// EnrichedComment carries the author's display data. Author is nil
// when the profile no longer exists.
type EnrichedComment struct {
	Comment
	Author *profilemodel.ProfileSummary `json:"author"`
}
