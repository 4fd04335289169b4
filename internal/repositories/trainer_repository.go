package repositories

import (
	"errors"

	"github.com/yellowboat/backoffice/internal/models"

	"gorm.io/gorm"
)

var ErrTrainerNotFound = errors.New("trainer not found")

type TrainerRepository interface {
	FindByID(id string) (*models.Trainer, error)
	FindByEmail(email string) (*models.Trainer, error)
	FindByUserID(userID string) (*models.Trainer, error)
	Create(trainer *models.Trainer) error
	Update(trainer *models.Trainer) error
	Delete(id string) error
	FindAll(search string, limit, offset int) ([]models.Trainer, int64, error)
	LinkUser(trainerID, userID string) error
}

type TrainerRepositoryImpl struct {
	db *gorm.DB
}

func NewTrainerRepository(db *gorm.DB) TrainerRepository {
	return &TrainerRepositoryImpl{db: db}
}

func (r *TrainerRepositoryImpl) FindByID(id string) (*models.Trainer, error) {
	var trainer models.Trainer
	err := r.db.Preload("Brands").First(&trainer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

func (r *TrainerRepositoryImpl) FindByEmail(email string) (*models.Trainer, error) {
	var trainer models.Trainer
	err := r.db.First(&trainer, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

func (r *TrainerRepositoryImpl) FindByUserID(userID string) (*models.Trainer, error) {
	var trainer models.Trainer
	err := r.db.First(&trainer, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

func (r *TrainerRepositoryImpl) Create(trainer *models.Trainer) error {
	return r.db.Create(trainer).Error
}

func (r *TrainerRepositoryImpl) Update(trainer *models.Trainer) error {
	result := r.db.Save(trainer)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (r *TrainerRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trainer_id = ?", id).
			Delete(&models.TrainerApplication{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Training{}).Where("trainer_id = ?", id).
			Update("trainer_id", nil).Error; err != nil {
			return err
		}

		result := tx.Select("Brands").Where("id = ?", id).Delete(&models.Trainer{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTrainerNotFound
		}
		return nil
	})
}

func (r *TrainerRepositoryImpl) FindAll(search string, limit, offset int) ([]models.Trainer, int64, error) {
	var trainers []models.Trainer
	query := r.db.Model(&models.Trainer{})

	if search != "" {
		pattern := ContainsPattern(search)
		query = query.Where(
			`LOWER(first_name) LIKE ? ESCAPE '\' OR LOWER(last_name) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\' OR LOWER(tags) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("last_name ASC, first_name ASC").
		Limit(limit).Offset(offset).Find(&trainers).Error
	return trainers, total, err
}

// LinkUser attaches a portal account to a trainer profile.
func (r *TrainerRepositoryImpl) LinkUser(trainerID, userID string) error {
	result := r.db.Model(&models.Trainer{}).Where("id = ?", trainerID).
		Update("user_id", userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTrainerNotFound
	}
	return nil
}
