package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yellowboat/backoffice/internal/services"
	"github.com/yellowboat/backoffice/internal/services/dto"
)

type CatalogHandler struct {
	*BaseHandler
	catalogService *services.CatalogService
}

func NewCatalogHandler(base *BaseHandler, catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{BaseHandler: base, catalogService: catalogService}
}

func (h *CatalogHandler) List(c *gin.Context) {
	entries, err := h.catalogService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *CatalogHandler) Get(c *gin.Context) {
	entry, err := h.catalogService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.CreateCatalogEntryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	entry, err := h.catalogService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *CatalogHandler) Update(c *gin.Context) {
	var req dto.UpdateCatalogEntryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	entry, err := h.catalogService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	if err := h.catalogService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
