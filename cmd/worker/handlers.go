package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"toolindex-backend/internal/config"
	seoservice "toolindex-backend/internal/domains/seo/service"
	"toolindex-backend/internal/infrastructure/email"
	"toolindex-backend/pkg/logger"
)

type Handlers struct {
	cfg          *config.Config
	emailService email.EmailService
	seoService   seoservice.SEOService
}

func NewHandlers(cfg *config.Config, emailService email.EmailService, seoService seoservice.SEOService) *Handlers {
	return &Handlers{
		cfg:          cfg,
		emailService: emailService,
		seoService:   seoService,
	}
}

// HandleContactNotifyAdmin emails the admin inbox about a new contact
// message. Errors are returned so asynq retries delivery.
func (h *Handlers) HandleContactNotifyAdmin(ctx context.Context, t *asynq.Task) error {
	var data email.ContactNotificationData
	if err := json.Unmarshal(t.Payload(), &data); err != nil {
		return fmt.Errorf("invalid contact notification payload: %v: %w", err, asynq.SkipRetry)
	}

	if err := h.emailService.SendContactNotification(ctx, h.cfg.SMTP.AdminEmail, data); err != nil {
		return fmt.Errorf("failed to send contact notification: %w", err)
	}

	logger.Info("contact notification sent", map[string]interface{}{
		"message_id": data.MessageID,
	})

	return nil
}

// HandleWarmSitemap regenerates the sitemap into the cache so the
// first morning crawler gets a warm hit.
func (h *Handlers) HandleWarmSitemap(ctx context.Context, t *asynq.Task) error {
	body, err := h.seoService.RebuildSitemap(ctx)
	if err != nil {
		return fmt.Errorf("failed to rebuild sitemap: %w", err)
	}

	logger.Info("sitemap warmed", map[string]interface{}{
		"bytes": len(body),
	})

	return nil
}
