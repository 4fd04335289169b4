package repositories

import (
	"errors"

	"github.com/yellowboat/backoffice/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	FindByID(id string) (*models.TrainerApplication, error)
	FindByTrainingAndTrainer(trainingID, trainerID string) (*models.TrainerApplication, error)
	Create(app *models.TrainerApplication) error
	Update(app *models.TrainerApplication) error
	Delete(id string) error
	FindAll(status models.ApplicationStatus) ([]models.TrainerApplication, error)
	FindByTrainer(trainerID string) ([]models.TrainerApplication, error)

	// Accept runs the whole acceptance inside one transaction: assign the
	// trainer, accept this application, reject the other pending ones.
	Accept(app *models.TrainerApplication, adminNotes string) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.TrainerApplication, error) {
	var app models.TrainerApplication
	err := r.db.Preload("Training").Preload("Trainer").First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByTrainingAndTrainer(trainingID, trainerID string) (*models.TrainerApplication, error) {
	var app models.TrainerApplication
	err := r.db.First(&app, "training_id = ? AND trainer_id = ?", trainingID, trainerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) Create(app *models.TrainerApplication) error {
	return r.db.Create(app).Error
}

func (r *ApplicationRepositoryImpl) Update(app *models.TrainerApplication) error {
	return r.db.Omit("Training", "Trainer").Save(app).Error
}

func (r *ApplicationRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.TrainerApplication{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindAll(status models.ApplicationStatus) ([]models.TrainerApplication, error) {
	var apps []models.TrainerApplication
	query := r.db.Preload("Training").Preload("Trainer")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindByTrainer(trainerID string) ([]models.TrainerApplication, error) {
	var apps []models.TrainerApplication
	err := r.db.Preload("Training").Where("trainer_id = ?", trainerID).
		Order("created_at DESC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) Accept(app *models.TrainerApplication, adminNotes string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Guard inside the transaction so two concurrent accepts cannot
		// both pass the no-trainer check.
		var training models.Training
		if err := tx.First(&training, "id = ?", app.TrainingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTrainingNotFound
			}
			return err
		}
		if training.TrainerID != nil {
			return ErrTrainerAssigned
		}

		if err := tx.Model(&models.Training{}).Where("id = ?", app.TrainingID).
			Update("trainer_id", app.TrainerID).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.TrainerApplication{}).Where("id = ?", app.ID).
			Updates(map[string]interface{}{
				"status":      models.ApplicationStatusAccepted,
				"admin_notes": adminNotes,
			}).Error; err != nil {
			return err
		}

		return tx.Model(&models.TrainerApplication{}).
			Where("training_id = ? AND id != ? AND status = ?",
				app.TrainingID, app.ID, models.ApplicationStatusPending).
			Update("status", models.ApplicationStatusRejected).Error
	})
}

// ErrTrainerAssigned is returned when acceptance races an earlier assignment.
var ErrTrainerAssigned = errors.New("training already has a trainer assigned")
