package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"toolindex-backend/internal/domains/notification/model"
	"toolindex-backend/internal/domains/notification/repository"
	"toolindex-backend/internal/shared/middleware"
	"toolindex-backend/internal/shared/response"
)

type PreferencesHandler struct {
	prefsRepo repository.PreferencesRepository
}

func NewPreferencesHandler(prefsRepo repository.PreferencesRepository) *PreferencesHandler {
	return &PreferencesHandler{prefsRepo: prefsRepo}
}

// Get handles GET /api/v1/user/notification-preferences
func (h *PreferencesHandler) Get(c *gin.Context) {
	callerID := middleware.CallerID(c)
	if callerID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	prefs, err := h.prefsRepo.Get(c.Request.Context(), *callerID)
	if err != nil {
		response.InternalError(c, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"preferences": prefs})
}

// Update handles PUT /api/v1/user/notification-preferences
func (h *PreferencesHandler) Update(c *gin.Context) {
	callerID := middleware.CallerID(c)
	if callerID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "NOTIF001", "Invalid request body")
		return
	}

	prefs := &model.Preferences{
		UserID:          *callerID,
		EmailOnApproval: req.EmailOnApproval,
		EmailOnReview:   req.EmailOnReview,
		Newsletter:      req.Newsletter,
		UpdatedAt:       time.Now(),
	}

	if err := h.prefsRepo.Upsert(c.Request.Context(), prefs); err != nil {
		response.InternalError(c, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"preferences": prefs})
}
