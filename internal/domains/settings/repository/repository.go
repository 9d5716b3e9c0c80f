package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"toolindex-backend/internal/domains/settings/model"
)

type SettingsRepository interface {
	// Get reads the singleton settings row
	Get(ctx context.Context) (*model.SiteSettings, error)
}

type postgresSettingsRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresSettingsRepository(pool *pgxpool.Pool) SettingsRepository {
	return &postgresSettingsRepository{pool: pool}
}

func (r *postgresSettingsRepository) Get(ctx context.Context) (*model.SiteSettings, error) {
	query := `
		SELECT site_name, site_description, logo_url,
		       twitter_url, github_url, discord_url, contact_email
		FROM site_settings
		LIMIT 1
	`

	var s model.SiteSettings
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.SiteName,
		&s.SiteDescription,
		&s.LogoURL,
		&s.TwitterURL,
		&s.GithubURL,
		&s.DiscordURL,
		&s.ContactEmail,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get site settings: %w", err)
	}

	return &s, nil
}
