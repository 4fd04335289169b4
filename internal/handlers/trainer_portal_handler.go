package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/repositories"
	"github.com/yellowboat/backoffice/internal/services"
	"github.com/yellowboat/backoffice/internal/services/dto"
)

// TrainerPortalHandler serves the trainer-facing surface: own profile,
// open trainings, applications and assigned trainings.
type TrainerPortalHandler struct {
	*BaseHandler
	trainerService     *services.TrainerService
	trainingService    *services.TrainingService
	applicationService *services.ApplicationService
}

func NewTrainerPortalHandler(
	base *BaseHandler,
	trainerService *services.TrainerService,
	trainingService *services.TrainingService,
	applicationService *services.ApplicationService,
) *TrainerPortalHandler {
	return &TrainerPortalHandler{
		BaseHandler:        base,
		trainerService:     trainerService,
		trainingService:    trainingService,
		applicationService: applicationService,
	}
}

// Dashboard aggregates what a trainer sees first: their profile, the
// next assigned trainings and application counters.
func (h *TrainerPortalHandler) Dashboard(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	trainer, err := h.trainerService.GetByUser(user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	upcoming, assignedTotal, err := h.trainingService.List(repositories.TrainingFilter{
		TrainerID: trainer.ID,
		Limit:     5,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	apps, err := h.applicationService.MyApplications(user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	pending := 0
	for _, app := range apps {
		if app.Status == models.ApplicationStatusPending {
			pending++
		}
	}

	open, err := h.applicationService.OpenTrainings()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trainer":              trainer,
		"upcoming_trainings":   upcoming,
		"assigned_total":       assignedTotal,
		"pending_applications": pending,
		"open_trainings":       len(open),
	})
}

func (h *TrainerPortalHandler) Profile(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	trainer, err := h.trainerService.GetByUser(user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainer)
}

func (h *TrainerPortalHandler) UpdateProfile(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.UpdateTrainerProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	trainer, err := h.trainerService.UpdateOwnProfile(user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainer)
}

// OpenTrainings lists trainings currently accepting applications.
func (h *TrainerPortalHandler) OpenTrainings(c *gin.Context) {
	trainings, err := h.applicationService.OpenTrainings()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trainings)
}

// MyTrainings lists trainings assigned to the calling trainer.
func (h *TrainerPortalHandler) MyTrainings(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	trainer, err := h.trainerService.GetByUser(user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	limit, offset := ParsePagination(c)
	trainings, total, err := h.trainingService.List(repositories.TrainingFilter{
		TrainerID: trainer.ID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(trainings, total, limit, offset))
}

func (h *TrainerPortalHandler) MyApplications(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.MyApplications(user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *TrainerPortalHandler) Apply(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.applicationService.Apply(user.ID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

func (h *TrainerPortalHandler) Withdraw(c *gin.Context) {
	user, ok := h.RequireUser(c)
	if !ok {
		return
	}

	if err := h.applicationService.Withdraw(user.ID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
