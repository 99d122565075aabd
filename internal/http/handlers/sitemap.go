package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/stainsolver/stainsolver-backend/internal/http/response"
	"github.com/stainsolver/stainsolver-backend/internal/services"
)

type SitemapHandler struct {
	sitemap services.SitemapService
}

func NewSitemapHandler(sitemap services.SitemapService) *SitemapHandler {
	return &SitemapHandler{sitemap: sitemap}
}

// GET /api/sitemap
func (h *SitemapHandler) GetSitemap(c *gin.Context) {
	urls, err := h.sitemap.Paths(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"total": len(urls), "urls": urls})
}
