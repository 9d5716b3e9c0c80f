package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"toolindex-backend/internal/domains/blog/model"
)

type postgresBlogRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresBlogRepository(pool *pgxpool.Pool) BlogRepository {
	return &postgresBlogRepository{pool: pool}
}

const postColumns = `
	id, title, slug, excerpt, content, cover_url, status, author_id,
	published_at, created_at, updated_at
`

func scanPost(row pgx.Row) (*model.Post, error) {
	var p model.Post
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Excerpt,
		&p.Content,
		&p.CoverURL,
		&p.Status,
		&p.AuthorID,
		&p.PublishedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *postgresBlogRepository) ListPublished(ctx context.Context, page, limit int) ([]*model.Post, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM blog_posts WHERE status = $1`, model.StatusPublished).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	query := `
		SELECT ` + postColumns + `
		FROM blog_posts
		WHERE status = $1
		ORDER BY published_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, model.StatusPublished, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	return posts, total, rows.Err()
}

func (r *postgresBlogRepository) GetPublishedBySlug(ctx context.Context, slug string) (*model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE slug = $1 AND status = $2`

	post, err := scanPost(r.pool.QueryRow(ctx, query, slug, model.StatusPublished))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

func (r *postgresBlogRepository) GetPostByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE id = $1`

	post, err := scanPost(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

func (r *postgresBlogRepository) CreateComment(ctx context.Context, comment *model.Comment) error {
	query := `
		INSERT INTO blog_comments (id, post_id, user_id, content, likes_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		comment.ID,
		comment.PostID,
		comment.UserID,
		comment.Content,
		comment.LikesCount,
		comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

func (r *postgresBlogRepository) ListCommentsByPost(ctx context.Context, postID uuid.UUID) ([]*model.Comment, error) {
	query := `
		SELECT id, post_id, user_id, content, likes_count, created_at
		FROM blog_comments
		WHERE post_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		var cm model.Comment
		if err := rows.Scan(&cm.ID, &cm.PostID, &cm.UserID, &cm.Content, &cm.LikesCount, &cm.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, &cm)
	}

	return comments, rows.Err()
}

func (r *postgresBlogRepository) IncrementCommentLikes(ctx context.Context, commentID uuid.UUID) (int, error) {
	query := `
		UPDATE blog_comments
		SET likes_count = likes_count + 1
		WHERE id = $1
		RETURNING likes_count
	`

	var count int
	err := r.pool.QueryRow(ctx, query, commentID).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, model.ErrCommentNotFound
		}
		return 0, fmt.Errorf("failed to increment likes: %w", err)
	}

	return count, nil
}
