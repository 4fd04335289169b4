package repositories

import (
	"errors"

	"github.com/yellowboat/backoffice/internal/models"

	"gorm.io/gorm"
)

var (
	ErrBrandNotFound  = errors.New("brand not found")
	ErrBrandSlugTaken = errors.New("brand slug already in use")
)

type BrandRepository interface {
	FindByID(id string) (*models.Brand, error)
	FindBySlug(slug string) (*models.Brand, error)
	Create(brand *models.Brand) error
	Update(brand *models.Brand) error
	Delete(id string) error
	FindAll() ([]models.Brand, error)
	CountTrainings(brandID string) (int64, error)
}

type BrandRepositoryImpl struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &BrandRepositoryImpl{db: db}
}

func (r *BrandRepositoryImpl) FindByID(id string) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.First(&brand, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	return &brand, nil
}

func (r *BrandRepositoryImpl) FindBySlug(slug string) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.First(&brand, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, err
	}
	return &brand, nil
}

func (r *BrandRepositoryImpl) Create(brand *models.Brand) error {
	var existing models.Brand
	if err := r.db.Where("slug = ?", brand.Slug).First(&existing).Error; err == nil {
		return ErrBrandSlugTaken
	}
	return r.db.Create(brand).Error
}

func (r *BrandRepositoryImpl) Update(brand *models.Brand) error {
	var existing models.Brand
	err := r.db.Where("slug = ? AND id != ?", brand.Slug, brand.ID).First(&existing).Error
	if err == nil {
		return ErrBrandSlugTaken
	}

	result := r.db.Save(brand)
	return result.Error
}

func (r *BrandRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Brand{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBrandNotFound
	}
	return nil
}

func (r *BrandRepositoryImpl) FindAll() ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.Order("name ASC").Find(&brands).Error
	return brands, err
}

func (r *BrandRepositoryImpl) CountTrainings(brandID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Training{}).Where("brand_id = ?", brandID).Count(&count).Error
	return count, err
}
