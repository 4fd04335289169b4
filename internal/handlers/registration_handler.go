package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/services"
	"github.com/yellowboat/backoffice/internal/services/dto"
)

type RegistrationHandler struct {
	*BaseHandler
	registrationService *services.RegistrationService
}

func NewRegistrationHandler(base *BaseHandler, registrationService *services.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{BaseHandler: base, registrationService: registrationService}
}

// Register is the public self-service entry point for trainers.
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req dto.RegisterTrainerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	reg, err := h.registrationService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":      reg.ID,
		"status":  reg.Status,
		"message": "Registration received. You will be notified once it has been reviewed.",
	})
}

func (h *RegistrationHandler) List(c *gin.Context) {
	regs, err := h.registrationService.List(models.RegistrationStatus(c.Query("status")))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, regs)
}

func (h *RegistrationHandler) Get(c *gin.Context) {
	reg, err := h.registrationService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

func (h *RegistrationHandler) Approve(c *gin.Context) {
	actor, ok := h.RequireUser(c)
	if !ok {
		return
	}

	reg, err := h.registrationService.Approve(actor, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

func (h *RegistrationHandler) Reject(c *gin.Context) {
	actor, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.RejectRegistrationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	reg, err := h.registrationService.Reject(actor, c.Param("id"), req.Reason)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}
