package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/repositories"
	"github.com/yellowboat/backoffice/internal/services"
	"github.com/yellowboat/backoffice/internal/services/dto"
)

type TrainingHandler struct {
	*BaseHandler
	trainingService *services.TrainingService
}

func NewTrainingHandler(base *BaseHandler, trainingService *services.TrainingService) *TrainingHandler {
	return &TrainingHandler{BaseHandler: base, trainingService: trainingService}
}

func (h *TrainingHandler) List(c *gin.Context) {
	limit, offset := ParsePagination(c)

	filter := repositories.TrainingFilter{
		BrandID:   c.Query("brand_id"),
		Status:    models.TrainingStatus(c.Query("status")),
		TrainerID: c.Query("trainer_id"),
		Search:    c.Query("search"),
		Limit:     limit,
		Offset:    offset,
	}

	trainings, total, err := h.trainingService.List(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewListResponse(trainings, total, limit, offset))
}

func (h *TrainingHandler) Get(c *gin.Context) {
	training, err := h.trainingService.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, training)
}

func (h *TrainingHandler) Create(c *gin.Context) {
	actor, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.CreateTrainingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	training, err := h.trainingService.Create(actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, training)
}

func (h *TrainingHandler) Update(c *gin.Context) {
	actor, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.UpdateTrainingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	training, err := h.trainingService.Update(actor, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, training)
}

func (h *TrainingHandler) Delete(c *gin.Context) {
	if err := h.trainingService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ChangeStatus moves the training along its lifecycle. Invalid moves
// come back as 409 with the allowed targets in the details.
func (h *TrainingHandler) ChangeStatus(c *gin.Context) {
	actor, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.ChangeStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	training, err := h.trainingService.ChangeStatus(actor, c.Param("id"), models.TrainingStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, training)
}

func (h *TrainingHandler) ActivityLogs(c *gin.Context) {
	logs, err := h.trainingService.ActivityLogs(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *TrainingHandler) AppendActivityLog(c *gin.Context) {
	actor, ok := h.RequireUser(c)
	if !ok {
		return
	}

	var req dto.AppendActivityLogRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	entry, err := h.trainingService.AppendActivityLog(actor, c.Param("id"), req.Message)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *TrainingHandler) ListTasks(c *gin.Context) {
	tasks, err := h.trainingService.TasksByTraining(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *TrainingHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	req.TrainingID = c.Param("id")

	task, err := h.trainingService.CreateTask(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *TrainingHandler) GetTask(c *gin.Context) {
	task, err := h.trainingService.GetTask(c.Param("taskId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TrainingHandler) UpdateTask(c *gin.Context) {
	var req dto.UpdateTaskRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	task, err := h.trainingService.UpdateTask(c.Param("taskId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TrainingHandler) DeleteTask(c *gin.Context) {
	if err := h.trainingService.DeleteTask(c.Param("taskId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
