package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/stainsolver/stainsolver-backend/internal/http/response"
	"github.com/stainsolver/stainsolver-backend/internal/platform/apierr"
	"github.com/stainsolver/stainsolver-backend/internal/platform/logger"
	"github.com/stainsolver/stainsolver-backend/internal/services"
)

type MaterialHandler struct {
	log     *logger.Logger
	catalog services.CatalogService
}

func NewMaterialHandler(log *logger.Logger, catalog services.CatalogService) *MaterialHandler {
	return &MaterialHandler{log: log.With("handler", "MaterialHandler"), catalog: catalog}
}

// GET /api/materials
func (h *MaterialHandler) ListMaterials(c *gin.Context) {
	materials, err := h.catalog.ListMaterials(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, materials)
}

// GET /api/materials/:name
func (h *MaterialHandler) GetMaterial(c *gin.Context) {
	material, err := h.catalog.GetMaterial(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, material)
}

// POST /api/materials
func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	var in services.CreateMaterialInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.RespondAPIError(c, apierr.BadRequest(err))
		return
	}
	material, err := h.catalog.CreateMaterial(c.Request.Context(), in)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	h.log.Info("material created", "name", material.Name)
	response.RespondCreated(c, material)
}
