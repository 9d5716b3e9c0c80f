package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"toolindex-backend/internal/domains/notification/model"
)

type PreferencesRepository interface {
	// Get returns the user's preferences, falling back to defaults
	// when none were ever saved
	Get(ctx context.Context, userID uuid.UUID) (*model.Preferences, error)

	// Upsert saves the user's preferences
	Upsert(ctx context.Context, prefs *model.Preferences) error
}

type postgresPreferencesRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPreferencesRepository(pool *pgxpool.Pool) PreferencesRepository {
	return &postgresPreferencesRepository{pool: pool}
}

func (r *postgresPreferencesRepository) Get(ctx context.Context, userID uuid.UUID) (*model.Preferences, error) {
	query := `
		SELECT user_id, email_on_approval, email_on_review, newsletter, updated_at
		FROM notification_preferences
		WHERE user_id = $1
	`

	var p model.Preferences
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.UserID,
		&p.EmailOnApproval,
		&p.EmailOnReview,
		&p.Newsletter,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.DefaultPreferences(userID), nil
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	return &p, nil
}

func (r *postgresPreferencesRepository) Upsert(ctx context.Context, prefs *model.Preferences) error {
	query := `
		INSERT INTO notification_preferences (user_id, email_on_approval, email_on_review, newsletter, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET email_on_approval = EXCLUDED.email_on_approval,
		    email_on_review = EXCLUDED.email_on_review,
		    newsletter = EXCLUDED.newsletter,
		    updated_at = EXCLUDED.updated_at
	`

	_, err := r.pool.Exec(ctx, query,
		prefs.UserID,
		prefs.EmailOnApproval,
		prefs.EmailOnReview,
		prefs.Newsletter,
		prefs.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert preferences: %w", err)
	}

	return nil
}
