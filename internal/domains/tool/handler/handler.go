package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"toolindex-backend/internal/domains/tool/model"
	"toolindex-backend/internal/domains/tool/service"
	"toolindex-backend/internal/shared/middleware"
	"toolindex-backend/internal/shared/response"
)

type ToolHandler struct {
	toolService service.ToolService
}

func NewToolHandler(toolService service.ToolService) *ToolHandler {
	return &ToolHandler{toolService: toolService}
}

// =====================================================
// PUBLIC ENDPOINTS
// =====================================================

// Submit handles POST /api/v1/tools
func (h *ToolHandler) Submit(c *gin.Context) {
	callerID := middleware.CallerID(c)
	if callerID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.SubmitToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, model.ErrCodeInvalidInput, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, model.ErrCodeInvalidInput, err.Error())
		return
	}

	tool, err := h.toolService.Submit(c.Request.Context(), *callerID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"tool": tool})
}

// List handles GET /api/v1/tools
func (h *ToolHandler) List(c *gin.Context) {
	q := model.ListToolsQuery{
		Category: c.Query("category"),
		Pricing:  c.Query("pricing"),
		Search:   c.Query("q"),
	}
	if featured := c.Query("featured"); featured != "" {
		v := featured == "true"
		q.Featured = &v
	}
	q.Page, q.Limit = parsePagination(c)

	tools, total, err := h.toolService.ListApproved(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if tools == nil {
		tools = []*model.Tool{}
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{"tools": tools},
		response.NewMeta(q.Page, q.Limit, total))
}

// GetBySlug handles GET /api/v1/tools/:slug
func (h *ToolHandler) GetBySlug(c *gin.Context) {
	tool, err := h.toolService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tool": tool})
}

// ListSubmissions handles GET /api/v1/user/submissions
func (h *ToolHandler) ListSubmissions(c *gin.Context) {
	callerID := middleware.CallerID(c)
	if callerID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	tools, err := h.toolService.ListSubmissions(c.Request.Context(), *callerID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if tools == nil {
		tools = []*model.Tool{}
	}

	c.Header("Cache-Control", "no-store")
	response.Success(c, http.StatusOK, gin.H{
		"submissions": tools,
		"count":       len(tools),
	})
}

// =====================================================
// ADMIN ENDPOINTS
// =====================================================

// ListPending handles GET /api/v1/admin/tools/pending
func (h *ToolHandler) ListPending(c *gin.Context) {
	tools, err := h.toolService.ListPending(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	if tools == nil {
		tools = []*model.Tool{}
	}

	response.Success(c, http.StatusOK, gin.H{"tools": tools})
}

// Approve handles POST /api/v1/admin/tools/:id/approve
func (h *ToolHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, model.ErrCodeInvalidInput, "Invalid tool id")
		return
	}

	callerID := middleware.CallerID(c)
	if callerID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.toolService.Approve(c.Request.Context(), id, *callerID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": true})
}

// Reject handles POST /api/v1/admin/tools/:id/reject
func (h *ToolHandler) Reject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, model.ErrCodeInvalidInput, "Invalid tool id")
		return
	}

	if err := h.toolService.Reject(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": true})
}

// Archive handles POST /api/v1/admin/tools/:id/archive
func (h *ToolHandler) Archive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, model.ErrCodeInvalidInput, "Invalid tool id")
		return
	}

	if err := h.toolService.Archive(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": true})
}

// ToggleFeatured handles POST /api/v1/admin/tools/:id/feature
func (h *ToolHandler) ToggleFeatured(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, model.ErrCodeInvalidInput, "Invalid tool id")
		return
	}

	featured, err := h.toolService.ToggleFeatured(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.FeatureToggleResponse{
		Success:    true,
		IsFeatured: featured,
	})
}

// =====================================================
// ERROR MAPPING
// =====================================================

func (h *ToolHandler) handleError(c *gin.Context, err error) {
	var toolErr *model.ToolError
	if errors.As(err, &toolErr) {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(toolErr.Err, model.ErrToolNotFound):
			status = http.StatusNotFound
		case errors.Is(toolErr.Err, model.ErrInvalidState):
			status = http.StatusBadRequest
		case errors.Is(toolErr.Err, model.ErrSlugTaken):
			status = http.StatusConflict
		}
		response.Error(c, status, toolErr.Code, toolErr.Message)
		return
	}

	switch {
	case errors.Is(err, model.ErrToolNotFound):
		response.Error(c, http.StatusNotFound, model.ErrCodeToolNotFound, "Tool not found")
	case errors.Is(err, model.ErrSlugTaken):
		response.Error(c, http.StatusConflict, model.ErrCodeSlugTaken, "A tool with this name already exists")
	default:
		response.InternalError(c, "Internal server error")
	}
}

func parsePagination(c *gin.Context) (int, int) {
	page := 1
	limit := 20
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	return page, limit
}
