package services

import (
	"errors"
	"fmt"

	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/repositories"
	"github.com/yellowboat/backoffice/internal/services/dto"
	"github.com/yellowboat/backoffice/pkg/apperrors"
)

type ApplicationService struct {
	appRepo      repositories.ApplicationRepository
	trainingRepo repositories.TrainingRepository
	trainerRepo  repositories.TrainerRepository
	notification *NotificationService
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	trainingRepo repositories.TrainingRepository,
	trainerRepo repositories.TrainerRepository,
	notification *NotificationService,
) *ApplicationService {
	return &ApplicationService{
		appRepo:      appRepo,
		trainingRepo: trainingRepo,
		trainerRepo:  trainerRepo,
		notification: notification,
	}
}

// OpenTrainings lists trainings a trainer can currently apply for.
func (s *ApplicationService) OpenTrainings() ([]models.Training, error) {
	trainings, err := s.trainingRepo.FindOpenForApplications()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return trainings, nil
}

// Apply files an application for the trainer linked to userID. One
// application per trainer and training.
func (s *ApplicationService) Apply(userID, trainingID string, req *dto.ApplyRequest) (*models.TrainerApplication, error) {
	trainer, err := s.trainerRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrTrainerNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "trainer",
				"No trainer profile is linked to this account", 404)
		}
		return nil, apperrors.InternalError(err)
	}

	training, err := s.trainingRepo.FindByID(trainingID)
	if err != nil {
		if errors.Is(err, repositories.ErrTrainingNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if training.Status != models.TrainingStatusTrainerOutreach || training.TrainerID != nil {
		return nil, apperrors.ErrInvalidOperation("application",
			"This training is not open for applications")
	}

	if _, err := s.appRepo.FindByTrainingAndTrainer(trainingID, trainer.ID); err == nil {
		return nil, apperrors.ErrApplicationAlreadyExists
	}

	app := &models.TrainerApplication{
		TrainingID:   trainingID,
		TrainerID:    trainer.ID,
		Status:       models.ApplicationStatusPending,
		Message:      req.Message,
		ProposedRate: req.ProposedRate,
	}
	if err := s.appRepo.Create(app); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notification.SendApplicationSubmitted(trainer, training)
	s.notification.NotifyStaffNewApplication(trainer, training)
	return app, nil
}

// Withdraw deletes the caller's own pending application.
func (s *ApplicationService) Withdraw(userID, applicationID string) error {
	trainer, err := s.trainerRepo.FindByUserID(userID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}

	app, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if app.TrainerID != trainer.ID {
		return apperrors.NewForbiddenError("You can only withdraw your own applications")
	}
	if app.Status != models.ApplicationStatusPending {
		return apperrors.ErrApplicationNotPending
	}

	if err := s.appRepo.Delete(applicationID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// MyApplications lists the caller's applications with their trainings.
func (s *ApplicationService) MyApplications(userID string) ([]models.TrainerApplication, error) {
	trainer, err := s.trainerRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrTrainerNotFound) {
			return []models.TrainerApplication{}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	apps, err := s.appRepo.FindByTrainer(trainer.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

func (s *ApplicationService) List(status models.ApplicationStatus) ([]models.TrainerApplication, error) {
	apps, err := s.appRepo.FindAll(status)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

// Accept assigns the applicant, accepts the application and rejects the
// remaining pending ones atomically, then notifies everyone affected.
func (s *ApplicationService) Accept(actor *models.User, applicationID, adminNotes string) (*models.TrainerApplication, error) {
	app, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if app.Status != models.ApplicationStatusPending {
		return nil, apperrors.ErrApplicationNotPending
	}

	// Collect the other pending applicants before the transaction flips
	// their status, so the rejection mails can still be sent.
	allApps, err := s.appRepo.FindAll(models.ApplicationStatusPending)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	var rejected []models.TrainerApplication
	for _, other := range allApps {
		if other.TrainingID == app.TrainingID && other.ID != app.ID {
			rejected = append(rejected, other)
		}
	}

	if err := s.appRepo.Accept(app, adminNotes); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTrainerAssigned):
			return nil, apperrors.ErrTrainerAlreadyAssigned
		case errors.Is(err, repositories.ErrTrainingNotFound):
			return nil, apperrors.ErrNotFound(err)
		default:
			return nil, apperrors.InternalError(err)
		}
	}

	accepted, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if accepted.Trainer != nil && accepted.Training != nil {
		s.notification.SendApplicationAccepted(accepted.Trainer, accepted.Training)
	}
	for _, other := range rejected {
		if other.Trainer != nil && other.Training != nil {
			s.notification.SendApplicationRejected(other.Trainer, other.Training)
		}
	}

	s.appendLog(accepted, actor)
	return accepted, nil
}

func (s *ApplicationService) appendLog(app *models.TrainerApplication, actor *models.User) {
	trainerName := app.TrainerID
	if app.Trainer != nil {
		trainerName = app.Trainer.FullName()
	}
	entry := &models.ActivityLog{
		TrainingID: app.TrainingID,
		Message:    fmt.Sprintf("Application accepted, trainer %s assigned", trainerName),
		CreatedBy:  actor.Username,
	}
	_ = s.trainingRepo.AppendActivityLog(entry)
}

// Reject turns down a single pending application.
func (s *ApplicationService) Reject(applicationID, adminNotes string) (*models.TrainerApplication, error) {
	app, err := s.appRepo.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if app.Status != models.ApplicationStatusPending {
		return nil, apperrors.ErrApplicationNotPending
	}

	app.Status = models.ApplicationStatusRejected
	app.AdminNotes = adminNotes
	if err := s.appRepo.Update(app); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if app.Trainer != nil && app.Training != nil {
		s.notification.SendApplicationRejected(app.Trainer, app.Training)
	}
	return app, nil
}
