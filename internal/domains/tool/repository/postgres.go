package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"toolindex-backend/internal/domains/tool/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresToolRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresToolRepository(pool *pgxpool.Pool) ToolRepository {
	return &postgresToolRepository{pool: pool}
}

const toolColumns = `
	id, name, slug, tagline, description, website_url, logo_url, screenshots,
	pricing_type, listing_type, rating_avg, rating_count,
	views_count, favorites_count, status, is_featured,
	submitted_by, approved_by, approved_at, created_at, updated_at
`

func scanTool(row pgx.Row) (*model.Tool, error) {
	var t model.Tool
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Slug,
		&t.Tagline,
		&t.Description,
		&t.WebsiteURL,
		&t.LogoURL,
		pq.Array(&t.Screenshots),
		&t.PricingType,
		&t.ListingType,
		&t.RatingAvg,
		&t.RatingCount,
		&t.ViewsCount,
		&t.FavoritesCount,
		&t.Status,
		&t.IsFeatured,
		&t.SubmittedBy,
		&t.ApprovedBy,
		&t.ApprovedAt,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresToolRepository) Create(ctx context.Context, tool *model.Tool) error {
	query := `
		INSERT INTO tools (
			id, name, slug, tagline, description, website_url, logo_url, screenshots,
			pricing_type, listing_type, status, is_featured,
			submitted_by, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.pool.Exec(ctx, query,
		tool.ID,
		tool.Name,
		tool.Slug,
		tool.Tagline,
		tool.Description,
		tool.WebsiteURL,
		tool.LogoURL,
		pq.Array(tool.Screenshots),
		tool.PricingType,
		tool.ListingType,
		tool.Status,
		tool.IsFeatured,
		tool.SubmittedBy,
		tool.CreatedAt,
		tool.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrSlugTaken
		}
		return fmt.Errorf("failed to create tool: %w", err)
	}

	return nil
}

// =====================================================
// GET
// =====================================================

func (r *postgresToolRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE id = $1`

	tool, err := scanTool(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrToolNotFound
		}
		return nil, fmt.Errorf("failed to get tool: %w", err)
	}

	return tool, nil
}

func (r *postgresToolRepository) GetBySlug(ctx context.Context, slug string) (*model.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE slug = $1 AND status = $2`

	tool, err := scanTool(r.pool.QueryRow(ctx, query, slug, model.StatusApproved))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrToolNotFound
		}
		return nil, fmt.Errorf("failed to get tool by slug: %w", err)
	}

	return tool, nil
}

// =====================================================
// LIST
// =====================================================

func (r *postgresToolRepository) ListApproved(ctx context.Context, q model.ListToolsQuery) ([]*model.Tool, int64, error) {
	conditions := []string{"status = $1"}
	args := []interface{}{model.StatusApproved}
	argCount := 1

	if q.Pricing != "" {
		argCount++
		conditions = append(conditions, fmt.Sprintf("pricing_type = $%d", argCount))
		args = append(args, q.Pricing)
	}

	if q.Search != "" {
		argCount++
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR tagline ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+q.Search+"%")
	}

	if q.Featured != nil {
		argCount++
		conditions = append(conditions, fmt.Sprintf("is_featured = $%d", argCount))
		args = append(args, *q.Featured)
	}

	if q.Category != "" {
		argCount++
		conditions = append(conditions, fmt.Sprintf(
			"id IN (SELECT tool_id FROM tool_categories tc JOIN categories c ON c.id = tc.category_id WHERE c.slug = $%d)", argCount))
		args = append(args, q.Category)
	}

	whereClause := ""
	for i, cond := range conditions {
		if i == 0 {
			whereClause = "WHERE " + cond
		} else {
			whereClause += " AND " + cond
		}
	}

	countQuery := "SELECT COUNT(*) FROM tools " + whereClause
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count tools: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM tools %s ORDER BY is_featured DESC, created_at DESC LIMIT $%d OFFSET $%d",
		toolColumns, whereClause, argCount+1, argCount+2,
	)
	args = append(args, q.Limit, (q.Page-1)*q.Limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tools: %w", err)
	}
	defer rows.Close()

	var tools []*model.Tool
	for rows.Next() {
		tool, err := scanTool(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan tool: %w", err)
		}
		tools = append(tools, tool)
	}

	return tools, total, rows.Err()
}

func (r *postgresToolRepository) ListPending(ctx context.Context) ([]*model.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE status = $1 ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, model.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending tools: %w", err)
	}
	defer rows.Close()

	var tools []*model.Tool
	for rows.Next() {
		tool, err := scanTool(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tool: %w", err)
		}
		tools = append(tools, tool)
	}

	return tools, rows.Err()
}

func (r *postgresToolRepository) ListBySubmitter(ctx context.Context, userID uuid.UUID) ([]*model.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE submitted_by = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var tools []*model.Tool
	for rows.Next() {
		tool, err := scanTool(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tool: %w", err)
		}
		tools = append(tools, tool)
	}

	return tools, rows.Err()
}

// =====================================================
// MODERATION
// =====================================================

func (r *postgresToolRepository) Approve(ctx context.Context, id, approvedBy uuid.UUID, approvedAt time.Time, forceFeatured bool) (bool, error) {
	// is_featured OR $x keeps a manually featured flag and raises it
	// for paid listings in the same statement.
	query := `
		UPDATE tools
		SET status = $1, approved_by = $2, approved_at = $3,
		    is_featured = is_featured OR $4, updated_at = NOW()
		WHERE id = $5 AND status = $6
	`

	tag, err := r.pool.Exec(ctx, query,
		model.StatusApproved, approvedBy, approvedAt, forceFeatured, id, model.StatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to approve tool: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *postgresToolRepository) Reject(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE tools
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	tag, err := r.pool.Exec(ctx, query, model.StatusRejected, id, model.StatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to reject tool: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *postgresToolRepository) Archive(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE tools
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	tag, err := r.pool.Exec(ctx, query, model.StatusArchived, id, model.StatusApproved)
	if err != nil {
		return false, fmt.Errorf("failed to archive tool: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *postgresToolRepository) ToggleFeatured(ctx context.Context, id uuid.UUID) (bool, bool, error) {
	query := `
		UPDATE tools
		SET is_featured = NOT is_featured, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING is_featured
	`

	var featured bool
	err := r.pool.QueryRow(ctx, query, id, model.StatusApproved).Scan(&featured)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, false, nil
		}
		return false, false, fmt.Errorf("failed to toggle featured: %w", err)
	}

	return featured, true, nil
}

// =====================================================
// AGGREGATES & COUNTERS
// =====================================================

func (r *postgresToolRepository) UpdateRatingAggregate(ctx context.Context, id uuid.UUID, avg float64, count int) error {
	query := `
		UPDATE tools
		SET rating_avg = $1, rating_count = $2, updated_at = NOW()
		WHERE id = $3
	`

	tag, err := r.pool.Exec(ctx, query, avg, count, id)
	if err != nil {
		return fmt.Errorf("failed to update rating aggregate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrToolNotFound
	}

	return nil
}

func (r *postgresToolRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE tools SET views_count = views_count + 1 WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}

// =====================================================
// ENRICHMENT & STATS
// =====================================================

func (r *postgresToolRepository) GetSummaries(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.ToolSummary, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]model.ToolSummary{}, nil
	}

	query := `SELECT id, name, slug, logo_url FROM tools WHERE id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get tool summaries: %w", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]model.ToolSummary, len(ids))
	for rows.Next() {
		var s model.ToolSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.LogoURL); err != nil {
			return nil, fmt.Errorf("failed to scan tool summary: %w", err)
		}
		result[s.ID] = s
	}

	return result, rows.Err()
}

func (r *postgresToolRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	query := `SELECT COUNT(*) FROM tools WHERE status = $1`

	var count int64
	if err := r.pool.QueryRow(ctx, query, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tools: %w", err)
	}

	return count, nil
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation surfaced by pgx.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
