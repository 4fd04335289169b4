package repositories

import (
	"errors"

	"github.com/yellowboat/backoffice/internal/models"

	"gorm.io/gorm"
)

var ErrCatalogEntryNotFound = errors.New("catalog entry not found")

type CatalogRepository interface {
	FindByID(id string) (*models.TrainingCatalogEntry, error)
	Create(entry *models.TrainingCatalogEntry) error
	Update(entry *models.TrainingCatalogEntry) error
	Delete(id string) error
	FindAll() ([]models.TrainingCatalogEntry, error)
}

type CatalogRepositoryImpl struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &CatalogRepositoryImpl{db: db}
}

func (r *CatalogRepositoryImpl) FindByID(id string) (*models.TrainingCatalogEntry, error) {
	var entry models.TrainingCatalogEntry
	err := r.db.First(&entry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCatalogEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *CatalogRepositoryImpl) Create(entry *models.TrainingCatalogEntry) error {
	return r.db.Create(entry).Error
}

func (r *CatalogRepositoryImpl) Update(entry *models.TrainingCatalogEntry) error {
	return r.db.Save(entry).Error
}

func (r *CatalogRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.TrainingCatalogEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCatalogEntryNotFound
	}
	return nil
}

func (r *CatalogRepositoryImpl) FindAll() ([]models.TrainingCatalogEntry, error) {
	var entries []models.TrainingCatalogEntry
	err := r.db.Order("title ASC").Find(&entries).Error
	return entries, err
}
