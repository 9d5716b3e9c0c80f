package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"toolindex-backend/internal/domains/profile/model"
	"toolindex-backend/internal/shared/authz"
)

type postgresProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &postgresProfileRepository{pool: pool}
}

func (r *postgresProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	query := `
		SELECT id, email, display_name, avatar_url, role, bio, website, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	var p model.Profile
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Email,
		&p.DisplayName,
		&p.AvatarURL,
		&p.Role,
		&p.Bio,
		&p.Website,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &p, nil
}

func (r *postgresProfileRepository) GetRole(ctx context.Context, userID uuid.UUID) (authz.Role, error) {
	query := `SELECT role FROM profiles WHERE id = $1`

	var role string
	err := r.pool.QueryRow(ctx, query, userID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No profile means no privileges, not a store failure.
			return authz.RoleUser, nil
		}
		return authz.RoleUser, fmt.Errorf("failed to get role: %w", err)
	}

	return authz.ParseRole(role), nil
}

func (r *postgresProfileRepository) GetSummaries(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.ProfileSummary, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]model.ProfileSummary{}, nil
	}

	query := `
		SELECT id, display_name, avatar_url
		FROM profiles
		WHERE id = ANY($1)
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile summaries: %w", err)
	}
	defer rows.Close()

	result := make(map[uuid.UUID]model.ProfileSummary, len(ids))
	for rows.Next() {
		var s model.ProfileSummary
		if err := rows.Scan(&s.ID, &s.DisplayName, &s.AvatarURL); err != nil {
			return nil, fmt.Errorf("failed to scan profile summary: %w", err)
		}
		result[s.ID] = s
	}

	return result, rows.Err()
}
