package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/services"
	"github.com/yellowboat/backoffice/internal/services/dto"
)

// ApplicationHandler covers the staff side of trainer applications.
type ApplicationHandler struct {
	*BaseHandler
	applicationService *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, applicationService: applicationService}
}

func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.applicationService.List(models.ApplicationStatus(c.Query("status")))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// Accept assigns the applicant to the training and rejects the other
// pending applications for it.
func (h *ApplicationHandler) Accept(c *gin.Context) {
	actor, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.ReviewApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.applicationService.Accept(actor, c.Param("id"), req.AdminNotes)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) Reject(c *gin.Context) {
	var req dto.ReviewApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.applicationService.Reject(c.Param("id"), req.AdminNotes)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
