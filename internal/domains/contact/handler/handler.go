package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"toolindex-backend/internal/domains/contact/model"
	"toolindex-backend/internal/domains/contact/service"
	"toolindex-backend/internal/shared/response"
)

type ContactHandler struct {
	contactService service.ContactService
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles POST /api/v1/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req model.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "CONTACT001", "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, "CONTACT001", err.Error())
		return
	}

	msg, err := h.contactService.Submit(c.Request.Context(), req)
	if err != nil {
		response.InternalError(c, "Internal server error")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"success": true,
		"id":      msg.ID,
	})
}
