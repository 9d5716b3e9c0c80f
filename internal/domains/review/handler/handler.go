package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"toolindex-backend/internal/domains/review/model"
	"toolindex-backend/internal/domains/review/service"
	toolmodel "toolindex-backend/internal/domains/tool/model"
	"toolindex-backend/internal/shared/middleware"
	"toolindex-backend/internal/shared/response"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// =====================================================
// PUBLIC & USER ENDPOINTS
// =====================================================

// Create handles POST /api/v1/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	callerID := middleware.CallerID(c)
	if callerID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, model.ErrCodeInvalidInput, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, model.ErrCodeInvalidInput, err.Error())
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), *callerID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": review})
}

// ListByTool handles GET /api/v1/reviews?tool_id=...
func (h *ReviewHandler) ListByTool(c *gin.Context) {
	toolID, err := uuid.Parse(c.Query("tool_id"))
	if err != nil {
		response.BadRequest(c, model.ErrCodeInvalidInput, "tool_id query parameter required")
		return
	}

	reviews, err := h.reviewService.ListApprovedByTool(c.Request.Context(), toolID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if reviews == nil {
		reviews = []*model.EnrichedReview{}
	}

	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

// =====================================================
// ADMIN ENDPOINTS
// =====================================================

// ListForAdmin handles GET /api/v1/admin/reviews
func (h *ReviewHandler) ListForAdmin(c *gin.Context) {
	q := model.AdminListReviewsQuery{
		Status: c.Query("status"),
		ToolID: c.Query("tool_id"),
	}
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		q.Page = v
	}
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		q.Limit = v
	}

	reviews, total, err := h.reviewService.ListForAdmin(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if reviews == nil {
		reviews = []*model.EnrichedReview{}
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{"reviews": reviews},
		response.NewMeta(q.Page, q.Limit, total))
}

// Approve handles POST /api/v1/admin/reviews/:id/approve
func (h *ReviewHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, model.ErrCodeInvalidInput, "Invalid review id")
		return
	}

	if err := h.reviewService.Approve(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": true})
}

// Reject handles POST /api/v1/admin/reviews/:id/reject
func (h *ReviewHandler) Reject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, model.ErrCodeInvalidInput, "Invalid review id")
		return
	}

	if err := h.reviewService.Reject(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"success": true})
}

// =====================================================
// ERROR MAPPING
// =====================================================

func (h *ReviewHandler) handleError(c *gin.Context, err error) {
	var reviewErr *model.ReviewError
	if errors.As(err, &reviewErr) {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(reviewErr.Err, model.ErrReviewNotFound):
			status = http.StatusNotFound
		case errors.Is(reviewErr.Err, model.ErrAlreadyReviewed):
			status = http.StatusConflict
		}
		response.Error(c, status, reviewErr.Code, reviewErr.Message)
		return
	}

	switch {
	case errors.Is(err, model.ErrReviewNotFound):
		response.Error(c, http.StatusNotFound, model.ErrCodeReviewNotFound, "Review not found")
	case errors.Is(err, model.ErrAlreadyReviewed):
		response.Error(c, http.StatusConflict, model.ErrCodeAlreadyReviewed, "You have already reviewed this tool")
	case errors.Is(err, toolmodel.ErrToolNotFound):
		response.Error(c, http.StatusNotFound, toolmodel.ErrCodeToolNotFound, "Tool not found")
	default:
		response.InternalError(c, "Internal server error")
	}
}
