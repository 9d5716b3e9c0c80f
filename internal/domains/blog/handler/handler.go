package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"toolindex-backend/internal/domains/blog/model"
	"toolindex-backend/internal/domains/blog/service"
	"toolindex-backend/internal/shared/middleware"
	"toolindex-backend/internal/shared/response"
)

type BlogHandler struct {
	blogService service.BlogService
}

func NewBlogHandler(blogService service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// ListPosts handles GET /api/v1/blog/posts
func (h *BlogHandler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	posts, total, err := h.blogService.ListPublished(c.Request.Context(), page, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if posts == nil {
		posts = []*model.Post{}
	}

	response.SuccessWithMeta(c, http.StatusOK, gin.H{"posts": posts},
		response.NewMeta(page, limit, total))
}

// GetPost handles GET /api/v1/blog/posts/:slug
func (h *BlogHandler) GetPost(c *gin.Context) {
	post, comments, err := h.blogService.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	if comments == nil {
		comments = []*model.EnrichedComment{}
	}

	response.Success(c, http.StatusOK, gin.H{
		"post":     post,
		"comments": comments,
	})
}

// CreateComment handles POST /api/v1/blog/posts/:id/comments
func (h *BlogHandler) CreateComment(c *gin.Context) {
	callerID := middleware.CallerID(c)
	if callerID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, model.ErrCodeInvalidInput, "Invalid post id")
		return
	}

	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, model.ErrCodeInvalidInput, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, model.ErrCodeInvalidInput, err.Error())
		return
	}

	comment, err := h.blogService.CreateComment(c.Request.Context(), postID, *callerID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"comment": comment})
}

// LikeComment handles POST /api/v1/blog/comments/:id/like
func (h *BlogHandler) LikeComment(c *gin.Context) {
	callerID := middleware.CallerID(c)
	if callerID == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, model.ErrCodeInvalidInput, "Invalid comment id")
		return
	}

	count, err := h.blogService.LikeComment(c.Request.Context(), commentID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, model.LikeCommentResponse{
		Liked:      true,
		LikesCount: count,
	})
}

func (h *BlogHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrPostNotFound):
		response.Error(c, http.StatusNotFound, model.ErrCodePostNotFound, "Post not found")
	case errors.Is(err, model.ErrCommentNotFound):
		response.Error(c, http.StatusNotFound, model.ErrCodeCommentNotFound, "Comment not found")
	default:
		response.InternalError(c, "Internal server error")
	}
}
