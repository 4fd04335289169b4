package services

import (
	"errors"

	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/repositories"
	"github.com/yellowboat/backoffice/internal/services/dto"
	"github.com/yellowboat/backoffice/pkg/apperrors"
)

type BrandService struct {
	brandRepo repositories.BrandRepository
}

func NewBrandService(brandRepo repositories.BrandRepository) *BrandService {
	return &BrandService{brandRepo: brandRepo}
}

func (s *BrandService) List() ([]models.Brand, error) {
	brands, err := s.brandRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return brands, nil
}

func (s *BrandService) Get(id string) (*models.Brand, error) {
	brand, err := s.brandRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrBrandNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return brand, nil
}

func (s *BrandService) Create(req *dto.CreateBrandRequest) (*models.Brand, error) {
	brand := &models.Brand{
		Name:               req.Name,
		Slug:               req.Slug,
		Description:        req.Description,
		DefaultSenderName:  req.DefaultSenderName,
		DefaultSenderEmail: req.DefaultSenderEmail,
		Color:              req.Color,
	}
	if req.DefaultTimezone != "" {
		brand.DefaultTimezone = req.DefaultTimezone
	}
	if req.DefaultLanguage != "" {
		brand.DefaultLanguage = req.DefaultLanguage
	}

	if err := s.brandRepo.Create(brand); err != nil {
		if errors.Is(err, repositories.ErrBrandSlugTaken) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return brand, nil
}

func (s *BrandService) Update(id string, req *dto.UpdateBrandRequest) (*models.Brand, error) {
	brand, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		brand.Name = *req.Name
	}
	if req.Slug != nil {
		brand.Slug = *req.Slug
	}
	if req.Description != nil {
		brand.Description = *req.Description
	}
	if req.DefaultSenderName != nil {
		brand.DefaultSenderName = *req.DefaultSenderName
	}
	if req.DefaultSenderEmail != nil {
		brand.DefaultSenderEmail = *req.DefaultSenderEmail
	}
	if req.DefaultTimezone != nil {
		brand.DefaultTimezone = *req.DefaultTimezone
	}
	if req.DefaultLanguage != nil {
		brand.DefaultLanguage = *req.DefaultLanguage
	}
	if req.Color != nil {
		brand.Color = *req.Color
	}

	if err := s.brandRepo.Update(brand); err != nil {
		if errors.Is(err, repositories.ErrBrandSlugTaken) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return brand, nil
}

// Delete refuses to remove a brand that still has trainings.
func (s *BrandService) Delete(id string) error {
	count, err := s.brandRepo.CountTrainings(id)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if count > 0 {
		return apperrors.ErrConflict(nil, "brand",
			"Brand still has trainings and cannot be deleted")
	}

	if err := s.brandRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrBrandNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
