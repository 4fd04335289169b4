package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/yellowboat/backoffice/internal/logger"
	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/repositories"
	"github.com/yellowboat/backoffice/internal/services/dto"
	"github.com/yellowboat/backoffice/pkg/apperrors"
)

type TrainingService struct {
	trainingRepo repositories.TrainingRepository
	trainerRepo  repositories.TrainerRepository
	brandRepo    repositories.BrandRepository
	customerRepo repositories.CustomerRepository
	notification *NotificationService
}

func NewTrainingService(
	trainingRepo repositories.TrainingRepository,
	trainerRepo repositories.TrainerRepository,
	brandRepo repositories.BrandRepository,
	customerRepo repositories.CustomerRepository,
	notification *NotificationService,
) *TrainingService {
	return &TrainingService{
		trainingRepo: trainingRepo,
		trainerRepo:  trainerRepo,
		brandRepo:    brandRepo,
		customerRepo: customerRepo,
		notification: notification,
	}
}

func (s *TrainingService) List(filter repositories.TrainingFilter) ([]models.Training, int64, error) {
	trainings, total, err := s.trainingRepo.FindAll(filter)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return trainings, total, nil
}

func (s *TrainingService) Get(id string) (*models.Training, error) {
	training, err := s.trainingRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTrainingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return training, nil
}

func validateTypeAndFormat(trainingType models.TrainingType, format models.TrainingFormat) error {
	if !models.ValidTrainingType(trainingType) {
		return apperrors.ErrInvalidStatus("training",
			"training_type must be one of: online, classroom")
	}
	if !models.ValidTrainingFormat(format) {
		return apperrors.ErrInvalidStatus("training",
			"training_format must be one of: inhouse, public")
	}
	return nil
}

func (s *TrainingService) Create(actor *models.User, req *dto.CreateTrainingRequest) (*models.Training, error) {
	trainingType := models.TrainingType(req.TrainingType)
	format := models.TrainingFormat(req.TrainingFormat)
	if err := validateTypeAndFormat(trainingType, format); err != nil {
		return nil, err
	}

	status := models.TrainingStatusLead
	if req.Status != "" {
		status = models.TrainingStatus(req.Status)
		if !models.ValidTrainingStatus(status) {
			return nil, apperrors.ErrInvalidStatus("training",
				"Unknown training status: "+req.Status)
		}
	}

	if _, err := s.brandRepo.FindByID(req.BrandID); err != nil {
		if errors.Is(err, repositories.ErrBrandNotFound) {
			return nil, apperrors.NewBadRequestError("Unknown brand: " + req.BrandID)
		}
		return nil, apperrors.InternalError(err)
	}
	if _, err := s.customerRepo.FindByID(req.CustomerID); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, apperrors.NewBadRequestError("Unknown customer: " + req.CustomerID)
		}
		return nil, apperrors.InternalError(err)
	}
	if req.TrainerID != nil {
		if _, err := s.trainerRepo.FindByID(*req.TrainerID); err != nil {
			if errors.Is(err, repositories.ErrTrainerNotFound) {
				return nil, apperrors.NewBadRequestError("Unknown trainer: " + *req.TrainerID)
			}
			return nil, apperrors.InternalError(err)
		}
	}

	training := &models.Training{
		Title:             req.Title,
		TrainingType:      trainingType,
		TrainingFormat:    format,
		DurationDays:      req.DurationDays,
		Status:            status,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		Timezone:          req.Timezone,
		Location:          req.Location,
		LocationDetails:   req.LocationDetails,
		OnlineLink:        req.OnlineLink,
		MaxParticipants:   req.MaxParticipants,
		Language:          req.Language,
		ContactPerson:     req.ContactPerson,
		InternalNotes:     req.InternalNotes,
		TrainerNotes:      req.TrainerNotes,
		DayRate:           req.DayRate,
		PriceExternal:     req.PriceExternal,
		PriceInternal:     req.PriceInternal,
		ChecklistTemplate: req.ChecklistTemplate,
		BrandID:           req.BrandID,
		CustomerID:        req.CustomerID,
		TrainerID:         req.TrainerID,
	}

	if err := s.trainingRepo.Create(training); err != nil {
		return nil, apperrors.InternalError(err)
	}

	switch {
	case len(req.Tasks) > 0:
		tasks := make([]models.TrainingTask, 0, len(req.Tasks))
		for _, t := range req.Tasks {
			tasks = append(tasks, models.TrainingTask{
				TrainingID:         training.ID,
				Title:              t.Title,
				Description:        t.Description,
				IsRequired:         t.IsRequired,
				DueDate:            t.DueDate,
				Assignee:           t.Assignee,
				Status:             models.TaskStatusOpen,
				ReminderOffsetDays: t.ReminderOffsetDays,
			})
		}
		if err := s.trainingRepo.CreateTasks(tasks); err != nil {
			return nil, apperrors.InternalError(err)
		}
	case req.GenerateChecklist:
		if err := s.trainingRepo.CreateTasks(GenerateTasks(training)); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	s.appendLog(training.ID, actor, fmt.Sprintf("Training %q created", training.Title))
	return s.Get(training.ID)
}

func (s *TrainingService) Update(actor *models.User, id string, req *dto.UpdateTrainingRequest) (*models.Training, error) {
	training, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.TrainingType != nil {
		t := models.TrainingType(*req.TrainingType)
		if !models.ValidTrainingType(t) {
			return nil, apperrors.ErrInvalidStatus("training",
				"training_type must be one of: online, classroom")
		}
		training.TrainingType = t
	}
	if req.TrainingFormat != nil {
		f := models.TrainingFormat(*req.TrainingFormat)
		if !models.ValidTrainingFormat(f) {
			return nil, apperrors.ErrInvalidStatus("training",
				"training_format must be one of: inhouse, public")
		}
		training.TrainingFormat = f
	}
	if req.BrandID != nil {
		if _, err := s.brandRepo.FindByID(*req.BrandID); err != nil {
			return nil, apperrors.NewBadRequestError("Unknown brand: " + *req.BrandID)
		}
		training.BrandID = *req.BrandID
	}
	if req.CustomerID != nil {
		if _, err := s.customerRepo.FindByID(*req.CustomerID); err != nil {
			return nil, apperrors.NewBadRequestError("Unknown customer: " + *req.CustomerID)
		}
		training.CustomerID = *req.CustomerID
	}
	var assignedTrainer *models.Trainer
	if req.TrainerID != nil {
		trainer, err := s.trainerRepo.FindByID(*req.TrainerID)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Unknown trainer: " + *req.TrainerID)
		}
		previous := training.TrainerID
		training.TrainerID = &trainer.ID
		if previous == nil || *previous != trainer.ID {
			assignedTrainer = trainer
		}
	}

	if req.Title != nil {
		training.Title = *req.Title
	}
	if req.DurationDays != nil {
		training.DurationDays = req.DurationDays
	}
	if req.StartDate != nil {
		training.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		training.EndDate = req.EndDate
	}
	if req.Timezone != nil {
		training.Timezone = *req.Timezone
	}
	if req.Location != nil {
		training.Location = *req.Location
	}
	if req.LocationDetails != nil {
		training.LocationDetails = *req.LocationDetails
	}
	if req.OnlineLink != nil {
		training.OnlineLink = *req.OnlineLink
	}
	if req.MaxParticipants != nil {
		training.MaxParticipants = req.MaxParticipants
	}
	if req.Language != nil {
		training.Language = *req.Language
	}
	if req.ContactPerson != nil {
		training.ContactPerson = *req.ContactPerson
	}
	if req.InternalNotes != nil {
		training.InternalNotes = *req.InternalNotes
	}
	if req.TrainerNotes != nil {
		training.TrainerNotes = *req.TrainerNotes
	}
	if req.DayRate != nil {
		training.DayRate = req.DayRate
	}
	if req.PriceExternal != nil {
		training.PriceExternal = req.PriceExternal
	}
	if req.PriceInternal != nil {
		training.PriceInternal = req.PriceInternal
	}
	if req.ChecklistTemplate != nil {
		training.ChecklistTemplate = *req.ChecklistTemplate
	}

	if err := s.trainingRepo.Update(training); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Log and notify only once the assignment is persisted.
	if assignedTrainer != nil {
		s.appendLog(training.ID, actor,
			fmt.Sprintf("Trainer %s assigned", assignedTrainer.FullName()))
		s.notification.SendTrainerAssigned(assignedTrainer, training)
	}

	// Only generate when the training has no tasks yet, same rule as on
	// create: an explicit task list always wins.
	if req.GenerateChecklist {
		count, err := s.trainingRepo.CountTasks(training.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if count == 0 {
			if err := s.trainingRepo.CreateTasks(GenerateTasks(training)); err != nil {
				return nil, apperrors.InternalError(err)
			}
		}
	}

	return s.Get(training.ID)
}

// ChangeStatus moves the training through the lifecycle. Disallowed moves
// are rejected; a no-op request returns the training unchanged without
// logging.
func (s *TrainingService) ChangeStatus(actor *models.User, id string, newStatus models.TrainingStatus) (*models.Training, error) {
	training, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if !models.ValidTrainingStatus(newStatus) {
		return nil, apperrors.ErrInvalidStatus("training",
			"Unknown training status: "+string(newStatus))
	}

	oldStatus := training.Status
	if oldStatus == newStatus {
		return training, nil
	}

	if !models.CanTransition(oldStatus, newStatus) {
		return nil, apperrors.ErrInvalidTransition("training", fmt.Sprintf(
			"Cannot change status from %q to %q", oldStatus, newStatus)).
			WithDetails(map[string]interface{}{
				"allowed": models.AllowedStatusTransitions[oldStatus],
			})
	}

	training.Status = newStatus
	if err := s.trainingRepo.Update(training); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.appendLog(training.ID, actor, fmt.Sprintf(
		"Status changed from %q to %q", oldStatus, newStatus))

	s.notification.SendStatusChanged(training, oldStatus, newStatus)
	return training, nil
}

func (s *TrainingService) Delete(id string) error {
	if err := s.trainingRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrTrainingNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// appendLog writes an audit entry; failures are logged but never fail
// the calling operation.
func (s *TrainingService) appendLog(trainingID string, actor *models.User, message string) {
	createdBy := ""
	if actor != nil {
		createdBy = actor.Username
	}
	entry := &models.ActivityLog{
		TrainingID: trainingID,
		Message:    message,
		CreatedBy:  createdBy,
	}
	if err := s.trainingRepo.AppendActivityLog(entry); err != nil {
		// Audit trail failures must not abort the business operation.
		logger.Error("activity log append failed", "training_id", trainingID, "error", err)
	}
}

func (s *TrainingService) ActivityLogs(trainingID string) ([]models.ActivityLog, error) {
	if _, err := s.Get(trainingID); err != nil {
		return nil, err
	}
	logs, err := s.trainingRepo.FindActivityLogs(trainingID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return logs, nil
}

func (s *TrainingService) AppendActivityLog(actor *models.User, trainingID, message string) (*models.ActivityLog, error) {
	if _, err := s.Get(trainingID); err != nil {
		return nil, err
	}
	entry := &models.ActivityLog{
		TrainingID: trainingID,
		Message:    message,
		CreatedBy:  actor.Username,
	}
	if err := s.trainingRepo.AppendActivityLog(entry); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entry, nil
}

// Tasks

func (s *TrainingService) CreateTask(req *dto.CreateTaskRequest) (*models.TrainingTask, error) {
	if _, err := s.Get(req.TrainingID); err != nil {
		return nil, err
	}

	task := &models.TrainingTask{
		TrainingID:         req.TrainingID,
		Title:              req.Title,
		Description:        req.Description,
		IsRequired:         req.IsRequired,
		DueDate:            req.DueDate,
		Assignee:           req.Assignee,
		Status:             models.TaskStatusOpen,
		ReminderOffsetDays: req.ReminderOffsetDays,
	}
	if err := s.trainingRepo.CreateTask(task); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return task, nil
}

func (s *TrainingService) GetTask(id string) (*models.TrainingTask, error) {
	task, err := s.trainingRepo.FindTaskByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return task, nil
}

func (s *TrainingService) UpdateTask(id string, req *dto.UpdateTaskRequest) (*models.TrainingTask, error) {
	task, err := s.GetTask(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.IsRequired != nil {
		task.IsRequired = *req.IsRequired
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Assignee != nil {
		task.Assignee = *req.Assignee
	}
	if req.ReminderOffsetDays != nil {
		task.ReminderOffsetDays = req.ReminderOffsetDays
	}
	if req.Status != nil {
		newStatus := models.TaskStatus(*req.Status)
		if newStatus == models.TaskStatusDone && task.Status != models.TaskStatusDone {
			now := time.Now()
			task.CompletedAt = &now
		}
		if newStatus == models.TaskStatusOpen {
			task.CompletedAt = nil
		}
		task.Status = newStatus
	}

	if err := s.trainingRepo.UpdateTask(task); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return task, nil
}

func (s *TrainingService) DeleteTask(id string) error {
	if err := s.trainingRepo.DeleteTask(id); err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *TrainingService) TasksByTraining(trainingID string) ([]models.TrainingTask, error) {
	tasks, err := s.trainingRepo.FindTasksByTraining(trainingID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return tasks, nil
}
