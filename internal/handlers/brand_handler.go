package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yellowboat/backoffice/internal/services"
	"github.com/yellowboat/backoffice/internal/services/dto"
)

type BrandHandler struct {
	*BaseHandler
	brandService *services.BrandService
}

func NewBrandHandler(base *BaseHandler, brandService *services.BrandService) *BrandHandler {
	return &BrandHandler{BaseHandler: base, brandService: brandService}
}

func (h *BrandHandler) List(c *gin.Context) {
	brands, err := h.brandService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (h *BrandHandler) Get(c *gin.Context) {
	brand, err := h.brandService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, brand)
}

func (h *BrandHandler) Create(c *gin.Context) {
	var req dto.CreateBrandRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	brand, err := h.brandService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, brand)
}

func (h *BrandHandler) Update(c *gin.Context) {
	var req dto.UpdateBrandRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	brand, err := h.brandService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, brand)
}

func (h *BrandHandler) Delete(c *gin.Context) {
	if err := h.brandService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
