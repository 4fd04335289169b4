package repositories

import (
	"errors"

	"github.com/yellowboat/backoffice/internal/models"

	"gorm.io/gorm"
)

var (
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrRegistrationExists   = errors.New("registration with this email already exists")
)

type RegistrationRepository interface {
	FindByID(id string) (*models.TrainerRegistration, error)
	FindByEmail(email string) (*models.TrainerRegistration, error)
	Create(reg *models.TrainerRegistration) error
	Update(reg *models.TrainerRegistration) error
	FindAll(status models.RegistrationStatus) ([]models.TrainerRegistration, error)

	// Approve materializes the registration into a User and Trainer in one
	// transaction and marks it approved.
	Approve(reg *models.TrainerRegistration, user *models.User, trainer *models.Trainer) error
}

type RegistrationRepositoryImpl struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &RegistrationRepositoryImpl{db: db}
}

func (r *RegistrationRepositoryImpl) FindByID(id string) (*models.TrainerRegistration, error) {
	var reg models.TrainerRegistration
	err := r.db.First(&reg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepositoryImpl) FindByEmail(email string) (*models.TrainerRegistration, error) {
	var reg models.TrainerRegistration
	err := r.db.First(&reg, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRegistrationNotFound
		}
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepositoryImpl) Create(reg *models.TrainerRegistration) error {
	var existing models.TrainerRegistration
	if err := r.db.Where("email = ?", reg.Email).First(&existing).Error; err == nil {
		return ErrRegistrationExists
	}
	return r.db.Create(reg).Error
}

func (r *RegistrationRepositoryImpl) Update(reg *models.TrainerRegistration) error {
	return r.db.Save(reg).Error
}

func (r *RegistrationRepositoryImpl) FindAll(status models.RegistrationStatus) ([]models.TrainerRegistration, error) {
	var regs []models.TrainerRegistration
	query := r.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&regs).Error
	return regs, err
}

func (r *RegistrationRepositoryImpl) Approve(reg *models.TrainerRegistration, user *models.User, trainer *models.Trainer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		trainer.UserID = &user.ID
		if err := tx.Create(trainer).Error; err != nil {
			return err
		}

		return tx.Save(reg).Error
	})
}
