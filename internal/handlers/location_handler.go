package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yellowboat/backoffice/internal/services"
	"github.com/yellowboat/backoffice/internal/services/dto"
)

type LocationHandler struct {
	*BaseHandler
	locationService *services.LocationService
}

func NewLocationHandler(base *BaseHandler, locationService *services.LocationService) *LocationHandler {
	return &LocationHandler{BaseHandler: base, locationService: locationService}
}

func (h *LocationHandler) List(c *gin.Context) {
	locations, err := h.locationService.List(c.Query("search"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

func (h *LocationHandler) Get(c *gin.Context) {
	location, err := h.locationService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

// ListPublic returns the trainer-safe view without billing details.
func (h *LocationHandler) ListPublic(c *gin.Context) {
	locations, err := h.locationService.ListPublic(c.Query("search"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}

func (h *LocationHandler) GetPublic(c *gin.Context) {
	location, err := h.locationService.GetPublic(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

func (h *LocationHandler) Create(c *gin.Context) {
	var req dto.CreateLocationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	location, err := h.locationService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, location)
}

func (h *LocationHandler) Update(c *gin.Context) {
	var req dto.UpdateLocationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	location, err := h.locationService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, location)
}

func (h *LocationHandler) Delete(c *gin.Context) {
	if err := h.locationService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
