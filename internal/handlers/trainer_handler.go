package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yellowboat/backoffice/internal/services"
	"github.com/yellowboat/backoffice/internal/services/dto"
)

type TrainerHandler struct {
	*BaseHandler
	trainerService *services.TrainerService
}

func NewTrainerHandler(base *BaseHandler, trainerService *services.TrainerService) *TrainerHandler {
	return &TrainerHandler{BaseHandler: base, trainerService: trainerService}
}

func (h *TrainerHandler) List(c *gin.Context) {
	limit, offset := ParsePagination(c)

	trainers, total, err := h.trainerService.List(c.Query("search"), limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(trainers, total, limit, offset))
}

func (h *TrainerHandler) Get(c *gin.Context) {
	trainer, err := h.trainerService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainer)
}

func (h *TrainerHandler) Create(c *gin.Context) {
	var req dto.CreateTrainerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	trainer, err := h.trainerService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trainer)
}

func (h *TrainerHandler) Update(c *gin.Context) {
	var req dto.UpdateTrainerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	trainer, err := h.trainerService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainer)
}

func (h *TrainerHandler) Delete(c *gin.Context) {
	if err := h.trainerService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
