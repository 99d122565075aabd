package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/stainsolver/stainsolver-backend/internal/http/response"
	"github.com/stainsolver/stainsolver-backend/internal/isr"
	"github.com/stainsolver/stainsolver-backend/internal/observability"
	"github.com/stainsolver/stainsolver-backend/internal/platform/apierr"
	"github.com/stainsolver/stainsolver-backend/internal/platform/logger"
	"github.com/stainsolver/stainsolver-backend/internal/services"
)

const (
	cacheControlFresh = "public, max-age=300, stale-while-revalidate=60"
	cacheControlStale = "public, max-age=60, stale-while-revalidate=300"
)

type GuideHandler struct {
	log     *logger.Logger
	guides  services.GuideService
	metrics *observability.Metrics
}

// NewGuideHandler builds the guide endpoints. metrics may be nil.
func NewGuideHandler(log *logger.Logger, guides services.GuideService, metrics *observability.Metrics) *GuideHandler {
	return &GuideHandler{log: log.With("handler", "GuideHandler"), guides: guides, metrics: metrics}
}

// GET /api/guides
func (h *GuideHandler) ListGuides(c *gin.Context) {
	guides, err := h.guides.ListGuides(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, guides)
}

// GET /api/guides/top
func (h *GuideHandler) TopGuides(c *gin.Context) {
	guides, err := h.guides.TopGuides(c.Request.Context(), services.TopGuidesLimit)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, guides)
}

// GET /api/guides/:stainName/:materialName
func (h *GuideHandler) GetGuide(c *gin.Context) {
	res, err := h.guides.GetGuide(c.Request.Context(), c.Param("stainName"), c.Param("materialName"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	h.metrics.IncCacheLookup(res.State.String())

	c.Header("X-Cache", res.State.String())
	if res.State == isr.Stale {
		c.Header("Cache-Control", cacheControlStale)
	} else {
		c.Header("Cache-Control", cacheControlFresh)
	}
	response.RespondOK(c, res.Data)
}

// POST /api/guides
func (h *GuideHandler) CreateGuide(c *gin.Context) {
	var in services.CreateGuideInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondAPIError(c, apierr.BadRequest(err))
		return
	}
	guide, err := h.guides.CreateGuide(c.Request.Context(), in)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	h.log.Info("guide created", "guide_id", guide.ID, "stain", in.StainName, "material", in.MaterialName)
	response.RespondCreated(c, guide)
}
