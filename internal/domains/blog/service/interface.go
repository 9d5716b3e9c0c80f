package service

import (
	"context"

	"github.com/google/uuid"

	"toolindex-backend/internal/domains/blog/model"
)

type BlogService interface {
	// ListPublished lists published posts for the public blog index
	ListPublished(ctx context.Context, page, limit int) ([]*model.Post, int64, error)

	// GetPublishedBySlug returns a published post with its comments,
	// comment authors attached
	GetPublishedBySlug(ctx context.Context, slug string) (*model.Post, []*model.EnrichedComment, error)

	// CreateComment adds a comment to a published post
	CreateComment(ctx context.Context, postID, userID uuid.UUID, req model.CreateCommentRequest) (*model.Comment, error)

	// LikeComment bumps the comment's like counter and returns the
	// new value. Not deduplicated per user.
	LikeComment(ctx context.Context, commentID uuid.UUID) (int, error)
}
