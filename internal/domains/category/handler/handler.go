package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"toolindex-backend/internal/domains/category/model"
	"toolindex-backend/internal/domains/category/repository"
	"toolindex-backend/internal/shared/response"
)

type CategoryHandler struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryHandler(categoryRepo repository.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categoryRepo: categoryRepo}
}

// List handles GET /api/v1/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryRepo.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Internal server error")
		return
	}
	if categories == nil {
		categories = []*model.Category{}
	}

	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}
