package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"toolindex-backend/internal/domains/seo/service"
)

type SEOHandler struct {
	seoService service.SEOService
}

func NewSEOHandler(seoService service.SEOService) *SEOHandler {
	return &SEOHandler{seoService: seoService}
}

// Sitemap handles GET /sitemap.xml
func (h *SEOHandler) Sitemap(c *gin.Context) {
	body, err := h.seoService.Sitemap(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "sitemap unavailable")
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

// Robots handles GET /robots.txt
func (h *SEOHandler) Robots(c *gin.Context) {
	c.Data(http.StatusOK, "text/plain; charset=utf-8", h.seoService.Robots())
}
