package repositories

import (
	"errors"
	"time"

	"github.com/yellowboat/backoffice/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTrainingNotFound = errors.New("training not found")
	ErrTaskNotFound     = errors.New("task not found")
)

// TrainingFilter narrows training listings.
type TrainingFilter struct {
	BrandID   string
	Status    models.TrainingStatus
	TrainerID string
	Search    string
	Limit     int
	Offset    int
}

type TrainingRepository interface {
	FindByID(id string) (*models.Training, error)
	Create(training *models.Training) error
	Update(training *models.Training) error
	Delete(id string) error
	FindAll(filter TrainingFilter) ([]models.Training, int64, error)
	FindOpenForApplications() ([]models.Training, error)
	FindUpcomingForReminder(dayStart, dayEnd time.Time) ([]models.Training, error)
	AssignTrainer(tx *gorm.DB, trainingID, trainerID string) error

	// Tasks
	CreateTask(task *models.TrainingTask) error
	CreateTasks(tasks []models.TrainingTask) error
	FindTaskByID(id string) (*models.TrainingTask, error)
	UpdateTask(task *models.TrainingTask) error
	DeleteTask(id string) error
	FindTasksByTraining(trainingID string) ([]models.TrainingTask, error)
	CountTasks(trainingID string) (int64, error)

	// Activity log
	AppendActivityLog(entry *models.ActivityLog) error
	FindActivityLogs(trainingID string) ([]models.ActivityLog, error)

	DB() *gorm.DB
}

type TrainingRepositoryImpl struct {
	db *gorm.DB
}

func NewTrainingRepository(db *gorm.DB) TrainingRepository {
	return &TrainingRepositoryImpl{db: db}
}

func (r *TrainingRepositoryImpl) FindByID(id string) (*models.Training, error) {
	var training models.Training
	err := r.db.Preload("Brand").Preload("Customer").Preload("Trainer").
		Preload("Tasks").First(&training, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrainingNotFound
		}
		return nil, err
	}
	return &training, nil
}

func (r *TrainingRepositoryImpl) Create(training *models.Training) error {
	return r.db.Create(training).Error
}

func (r *TrainingRepositoryImpl) Update(training *models.Training) error {
	return r.db.Omit("Brand", "Customer", "Trainer", "Tasks", "ActivityLogs").
		Save(training).Error
}

// Delete removes the training with its tasks, activity logs and
// applications in a single transaction.
func (r *TrainingRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("training_id = ?", id).Delete(&models.TrainingTask{}).Error; err != nil {
			return err
		}
		if err := tx.Where("training_id = ?", id).Delete(&models.ActivityLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("training_id = ?", id).Delete(&models.TrainerApplication{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Training{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTrainingNotFound
		}
		return nil
	})
}

func (r *TrainingRepositoryImpl) FindAll(filter TrainingFilter) ([]models.Training, int64, error) {
	var trainings []models.Training
	query := r.db.Model(&models.Training{})

	if filter.BrandID != "" {
		query = query.Where("brand_id = ?", filter.BrandID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.TrainerID != "" {
		query = query.Where("trainer_id = ?", filter.TrainerID)
	}
	if filter.Search != "" {
		pattern := ContainsPattern(filter.Search)
		query = query.Where(`LOWER(title) LIKE ? ESCAPE '\'`, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 50
	}

	err := query.Preload("Brand").Preload("Customer").Preload("Trainer").
		Order("created_at DESC").Limit(limit).Offset(filter.Offset).
		Find(&trainings).Error
	return trainings, total, err
}

// FindOpenForApplications lists trainings in trainer_outreach with no
// trainer assigned, the set shown to trainers on the portal.
func (r *TrainingRepositoryImpl) FindOpenForApplications() ([]models.Training, error) {
	var trainings []models.Training
	err := r.db.Preload("Brand").Preload("Customer").
		Where("status = ? AND trainer_id IS NULL", models.TrainingStatusTrainerOutreach).
		Order("start_date ASC").Find(&trainings).Error
	return trainings, err
}

// FindUpcomingForReminder lists trainings starting within [dayStart, dayEnd)
// that are confirmed or in planning and have a trainer assigned.
func (r *TrainingRepositoryImpl) FindUpcomingForReminder(dayStart, dayEnd time.Time) ([]models.Training, error) {
	var trainings []models.Training
	err := r.db.Preload("Trainer").Preload("Customer").
		Where("start_date >= ? AND start_date < ?", dayStart, dayEnd).
		Where("status IN ?", []models.TrainingStatus{
			models.TrainingStatusTrainerConfirmed,
			models.TrainingStatusPlanning,
		}).
		Where("trainer_id IS NOT NULL").
		Find(&trainings).Error
	return trainings, err
}

// AssignTrainer sets the trainer inside an existing transaction.
func (r *TrainingRepositoryImpl) AssignTrainer(tx *gorm.DB, trainingID, trainerID string) error {
	result := tx.Model(&models.Training{}).Where("id = ?", trainingID).
		Update("trainer_id", trainerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTrainingNotFound
	}
	return nil
}

// Tasks

func (r *TrainingRepositoryImpl) CreateTask(task *models.TrainingTask) error {
	return r.db.Create(task).Error
}

func (r *TrainingRepositoryImpl) CreateTasks(tasks []models.TrainingTask) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.Create(&tasks).Error
}

func (r *TrainingRepositoryImpl) FindTaskByID(id string) (*models.TrainingTask, error) {
	var task models.TrainingTask
	err := r.db.First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TrainingRepositoryImpl) UpdateTask(task *models.TrainingTask) error {
	return r.db.Save(task).Error
}

func (r *TrainingRepositoryImpl) DeleteTask(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.TrainingTask{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *TrainingRepositoryImpl) FindTasksByTraining(trainingID string) ([]models.TrainingTask, error) {
	var tasks []models.TrainingTask
	err := r.db.Where("training_id = ?", trainingID).
		Order("due_date ASC, created_at ASC").Find(&tasks).Error
	return tasks, err
}

func (r *TrainingRepositoryImpl) CountTasks(trainingID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.TrainingTask{}).
		Where("training_id = ?", trainingID).Count(&count).Error
	return count, err
}

// Activity log

func (r *TrainingRepositoryImpl) AppendActivityLog(entry *models.ActivityLog) error {
	return r.db.Create(entry).Error
}

func (r *TrainingRepositoryImpl) FindActivityLogs(trainingID string) ([]models.ActivityLog, error) {
	var logs []models.ActivityLog
	err := r.db.Where("training_id = ?", trainingID).
		Order("created_at DESC").Find(&logs).Error
	return logs, err
}

// DB exposes the underlying handle for cross-repository transactions.
func (r *TrainingRepositoryImpl) DB() *gorm.DB {
	return r.db
}
