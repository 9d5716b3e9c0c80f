package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"toolindex-backend/internal/domains/upload/model"
	"toolindex-backend/internal/domains/upload/service"
	"toolindex-backend/internal/shared/response"
)

type UploadHandler struct {
	uploadService service.UploadService
}

func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadContent handles POST /api/v1/admin/uploads/content
func (h *UploadHandler) UploadContent(c *gin.Context) {
	h.upload(c, model.KindContent)
}

// UploadBlogCover handles POST /api/v1/admin/uploads/blog-cover
func (h *UploadHandler) UploadBlogCover(c *gin.Context) {
	h.upload(c, model.KindBlogCover)
}

// UploadTestimonial handles POST /api/v1/uploads/testimonial
func (h *UploadHandler) UploadTestimonial(c *gin.Context) {
	h.upload(c, model.KindTestimonial)
}

func (h *UploadHandler) upload(c *gin.Context, kind model.Kind) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, model.ErrCodeNoFile, "No file provided")
		return
	}

	if fileHeader.Size > kind.MaxSize {
		response.BadRequest(c, model.ErrCodeTooLarge, "File exceeds size limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c, "Failed to read upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, kind.MaxSize+1))
	if err != nil {
		response.InternalError(c, "Failed to read upload")
		return
	}

	result, err := h.uploadService.Upload(
		c.Request.Context(),
		kind,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *UploadHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidType):
		response.BadRequest(c, model.ErrCodeInvalidType, "File type not allowed")
	case errors.Is(err, model.ErrTooLarge):
		response.BadRequest(c, model.ErrCodeTooLarge, "File exceeds size limit")
	default:
		response.InternalError(c, "Upload failed")
	}
}
