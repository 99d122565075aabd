package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/stainsolver/stainsolver-backend/internal/http/response"
	"github.com/stainsolver/stainsolver-backend/internal/platform/apierr"
	"github.com/stainsolver/stainsolver-backend/internal/platform/logger"
	"github.com/stainsolver/stainsolver-backend/internal/services"
)

type StainHandler struct {
	log     *logger.Logger
	catalog services.CatalogService
}

func NewStainHandler(log *logger.Logger, catalog services.CatalogService) *StainHandler {
	return &StainHandler{log: log.With("handler", "StainHandler"), catalog: catalog}
}

// GET /api/stains
func (h *StainHandler) ListStains(c *gin.Context) {
	stains, err := h.catalog.ListStains(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, stains)
}

// GET /api/stains/:name
func (h *StainHandler) GetStain(c *gin.Context) {
	stain, err := h.catalog.GetStain(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, stain)
}

// POST /api/stains
func (h *StainHandler) CreateStain(c *gin.Context) {
	var in services.CreateStainInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondAPIError(c, apierr.BadRequest(err))
		return
	}
	stain, err := h.catalog.CreateStain(c.Request.Context(), in)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	h.log.Info("stain created", "name", stain.Name)
	response.RespondCreated(c, stain)
}
