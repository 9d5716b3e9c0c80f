package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SlugEntry is one sitemap candidate.
type SlugEntry struct {
	Slug      string
	UpdatedAt time.Time
}

type SEORepository interface {
	// ApprovedToolSlugs lists slugs of approved tools
	ApprovedToolSlugs(ctx context.Context) ([]SlugEntry, error)

	// CategorySlugs lists all category slugs
	CategorySlugs(ctx context.Context) ([]SlugEntry, error)

	// PublishedPostSlugs lists slugs of published blog posts
	PublishedPostSlugs(ctx context.Context) ([]SlugEntry, error)
}

type postgresSEORepository struct {
	pool *pgxpool.Pool
}

func NewPostgresSEORepository(pool *pgxpool.Pool) SEORepository {
	return &postgresSEORepository{pool: pool}
}

func (r *postgresSEORepository) ApprovedToolSlugs(ctx context.Context) ([]SlugEntry, error) {
	return r.listSlugs(ctx,
		`SELECT slug, updated_at FROM tools WHERE status = 'approved' ORDER BY slug`)
}

func (r *postgresSEORepository) CategorySlugs(ctx context.Context) ([]SlugEntry, error) {
	return r.listSlugs(ctx,
		`SELECT slug, created_at FROM categories ORDER BY slug`)
}

func (r *postgresSEORepository) PublishedPostSlugs(ctx context.Context) ([]SlugEntry, error) {
	return r.listSlugs(ctx,
		`SELECT slug, updated_at FROM blog_posts WHERE status = 'published' ORDER BY slug`)
}

func (r *postgresSEORepository) listSlugs(ctx context.Context, query string) ([]SlugEntry, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list slugs: %w", err)
	}
	defer rows.Close()

	var entries []SlugEntry
	for rows.Next() {
		var e SlugEntry
		if err := rows.Scan(&e.Slug, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan slug: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
