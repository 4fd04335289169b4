package repositories

import (
	"errors"

	"github.com/yellowboat/backoffice/internal/models"

	"gorm.io/gorm"
)

var ErrLocationNotFound = errors.New("location not found")

type LocationRepository interface {
	FindByID(id string) (*models.Location, error)
	Create(location *models.Location) error
	Update(location *models.Location) error
	Delete(id string) error
	FindAll(search string) ([]models.Location, error)
}

type LocationRepositoryImpl struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &LocationRepositoryImpl{db: db}
}

func (r *LocationRepositoryImpl) FindByID(id string) (*models.Location, error) {
	var location models.Location
	err := r.db.First(&location, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	return &location, nil
}

func (r *LocationRepositoryImpl) Create(location *models.Location) error {
	return r.db.Create(location).Error
}

func (r *LocationRepositoryImpl) Update(location *models.Location) error {
	return r.db.Save(location).Error
}

func (r *LocationRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Location{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLocationNotFound
	}
	return nil
}

func (r *LocationRepositoryImpl) FindAll(search string) ([]models.Location, error) {
	var locations []models.Location
	query := r.db.Model(&models.Location{})

	if search != "" {
		pattern := ContainsPattern(search)
		query = query.Where(
			`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(city) LIKE ? ESCAPE '\'`,
			pattern, pattern)
	}

	err := query.Order("name ASC").Find(&locations).Error
	return locations, err
}
