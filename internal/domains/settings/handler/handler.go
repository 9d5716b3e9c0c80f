package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"toolindex-backend/internal/domains/settings/model"
	"toolindex-backend/internal/domains/settings/repository"
	"toolindex-backend/internal/shared/response"
	pkgcache "toolindex-backend/pkg/cache"
	"toolindex-backend/pkg/logger"
)

const (
	settingsCacheKey = "settings:site"
	settingsTTL      = 300 * time.Second
)

type SettingsHandler struct {
	settingsRepo repository.SettingsRepository
	cache        pkgcache.Cache
}

func NewSettingsHandler(settingsRepo repository.SettingsRepository, cache pkgcache.Cache) *SettingsHandler {
	return &SettingsHandler{
		settingsRepo: settingsRepo,
		cache:        cache,
	}
}

// GetPublic handles GET /api/v1/public/settings
func (h *SettingsHandler) GetPublic(c *gin.Context) {
	ctx := c.Request.Context()
	c.Header("Cache-Control", "public, max-age=300")

	var settings model.SiteSettings
	hit, err := h.cache.Get(ctx, settingsCacheKey, &settings)
	if err != nil {
		logger.Warn("settings cache read failed", err, nil)
	}
	if hit {
		response.Success(c, http.StatusOK, gin.H{"settings": gin.H{"site": settings}})
		return
	}

	fresh, err := h.settingsRepo.Get(ctx)
	if err != nil {
		response.InternalError(c, "Internal server error")
		return
	}

	if err := h.cache.Set(ctx, settingsCacheKey, fresh, settingsTTL); err != nil {
		logger.Warn("settings cache write failed", err, nil)
	}

	response.Success(c, http.StatusOK, gin.H{"settings": gin.H{"site": fresh}})
}
