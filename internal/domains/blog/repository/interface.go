package repository

import (
	"context"

	"github.com/google/uuid"

	"toolindex-backend/internal/domains/blog/model"
)

type BlogRepository interface {
	// ListPublished lists published posts, newest first
	ListPublished(ctx context.Context, page, limit int) ([]*model.Post, int64, error)

	// GetPublishedBySlug gets a published post by slug
	GetPublishedBySlug(ctx context.Context, slug string) (*model.Post, error)

	// GetPostByID gets a post by id regardless of status
	GetPostByID(ctx context.Context, id uuid.UUID) (*model.Post, error)

	// CreateComment creates a comment on a post
	CreateComment(ctx context.Context, comment *model.Comment) error

	// ListCommentsByPost lists a post's comments, oldest first
	ListCommentsByPost(ctx context.Context, postID uuid.UUID) ([]*model.Comment, error)

	// IncrementCommentLikes bumps the like counter and returns the
	// new value
	IncrementCommentLikes(ctx context.Context, commentID uuid.UUID) (int, error)
}
