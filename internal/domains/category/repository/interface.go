package repository

import (
	"context"

	"toolindex-backend/internal/domains/category/model"
)

type CategoryRepository interface {
	// List lists all categories with their approved-tool counts
	List(ctx context.Context) ([]*model.Category, error)

	// GetBySlug gets a category by slug
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)
}
