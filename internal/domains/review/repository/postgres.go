package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"toolindex-backend/internal/domains/review/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresReviewRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &postgresReviewRepository{pool: pool}
}

const reviewColumns = `
	id, tool_id, user_id, rating, title, comment, pros, cons, status,
	created_at, updated_at
`

func scanReview(row pgx.Row) (*model.Review, error) {
	var rev model.Review
	err := row.Scan(
		&rev.ID,
		&rev.ToolID,
		&rev.UserID,
		&rev.Rating,
		&rev.Title,
		&rev.Comment,
		&rev.Pros,
		&rev.Cons,
		&rev.Status,
		&rev.CreatedAt,
		&rev.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *postgresReviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (
			id, tool_id, user_id, rating, title, comment, pros, cons, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		review.ID,
		review.ToolID,
		review.UserID,
		review.Rating,
		review.Title,
		review.Comment,
		review.Pros,
		review.Cons,
		review.Status,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		// One review per user per tool.
		if isUniqueViolation(err) {
			return model.ErrAlreadyReviewed
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (r *postgresReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	review, err := scanReview(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return review, nil
}

func (r *postgresReviewRepository) ListApprovedByTool(ctx context.Context, toolID uuid.UUID) ([]*model.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE tool_id = $1 AND status = $2
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, toolID, model.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*model.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	return reviews, rows.Err()
}

func (r *postgresReviewRepository) ListForAdmin(ctx context.Context, q model.AdminListReviewsQuery) ([]*model.Review, int64, error) {
	whereClause := ""
	args := []interface{}{}
	argCount := 0

	if q.Status != "" {
		argCount++
		whereClause = fmt.Sprintf("WHERE status = $%d", argCount)
		args = append(args, q.Status)
	}

	if q.ToolID != "" {
		argCount++
		if whereClause == "" {
			whereClause = fmt.Sprintf("WHERE tool_id = $%d", argCount)
		} else {
			whereClause += fmt.Sprintf(" AND tool_id = $%d", argCount)
		}
		args = append(args, q.ToolID)
	}

	countQuery := "SELECT COUNT(*) FROM reviews " + whereClause
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM reviews %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		reviewColumns, whereClause, argCount+1, argCount+2,
	)
	args = append(args, q.Limit, (q.Page-1)*q.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*model.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}

	return reviews, total, rows.Err()
}

func (r *postgresReviewRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE reviews SET status = $1, updated_at = NOW() WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to set review status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}

	return nil
}

func (r *postgresReviewRepository) ApprovedRatings(ctx context.Context, toolID uuid.UUID) ([]int, error) {
	query := `SELECT rating FROM reviews WHERE tool_id = $1 AND status = $2`

	rows, err := r.pool.Query(ctx, query, toolID, model.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to read approved ratings: %w", err)
	}
	defer rows.Close()

	var ratings []int
	for rows.Next() {
		var rating int
		if err := rows.Scan(&rating); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, rating)
	}

	return ratings, rows.Err()
}

func (r *postgresReviewRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE status = $1`

	var count int64
	if err := r.pool.QueryRow(ctx, query, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	return count, nil
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation surfaced by pgx.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
