package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"toolindex-backend/internal/domains/stats/service"
	"toolindex-backend/internal/shared/response"
)

type StatsHandler struct {
	statsService service.StatsService
}

func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Dashboard handles GET /api/v1/admin/stats
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.statsService.Dashboard(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}
