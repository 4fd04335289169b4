package services

import (
	"encoding/json"
	"errors"

	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/repositories"
	"github.com/yellowboat/backoffice/internal/services/dto"
	"github.com/yellowboat/backoffice/pkg/apperrors"

	"gorm.io/datatypes"
)

type TrainerService struct {
	trainerRepo repositories.TrainerRepository
	brandRepo   repositories.BrandRepository
}

func NewTrainerService(trainerRepo repositories.TrainerRepository, brandRepo repositories.BrandRepository) *TrainerService {
	return &TrainerService{trainerRepo: trainerRepo, brandRepo: brandRepo}
}

func specializationsJSON(values []string) datatypes.JSON {
	if values == nil {
		return nil
	}
	b, _ := json.Marshal(values)
	return datatypes.JSON(b)
}

func (s *TrainerService) List(search string, limit, offset int) ([]models.Trainer, int64, error) {
	trainers, total, err := s.trainerRepo.FindAll(search, limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return trainers, total, nil
}

func (s *TrainerService) Get(id string) (*models.Trainer, error) {
	trainer, err := s.trainerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTrainerNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return trainer, nil
}

// GetByUser resolves the trainer profile linked to a portal account.
func (s *TrainerService) GetByUser(userID string) (*models.Trainer, error) {
	trainer, err := s.trainerRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrTrainerNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "trainer",
				"No trainer profile is linked to this account", 404)
		}
		return nil, apperrors.InternalError(err)
	}
	return trainer, nil
}

func (s *TrainerService) resolveBrands(ids []string) ([]models.Brand, error) {
	brands := make([]models.Brand, 0, len(ids))
	for _, id := range ids {
		brand, err := s.brandRepo.FindByID(id)
		if err != nil {
			if errors.Is(err, repositories.ErrBrandNotFound) {
				return nil, apperrors.NewBadRequestError("Unknown brand: " + id)
			}
			return nil, apperrors.InternalError(err)
		}
		brands = append(brands, *brand)
	}
	return brands, nil
}

func (s *TrainerService) Create(req *dto.CreateTrainerRequest) (*models.Trainer, error) {
	trainer := &models.Trainer{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		VATNumber:       req.VATNumber,
		LinkedInURL:     req.LinkedInURL,
		Website:         req.Website,
		DefaultDayRate:  req.DefaultDayRate,
		Specializations: specializationsJSON(req.Specializations),
		Tags:            req.Tags,
		Region:          req.Region,
		Bio:             req.Bio,
		Notes:           req.Notes,
	}

	if len(req.BrandIDs) > 0 {
		brands, err := s.resolveBrands(req.BrandIDs)
		if err != nil {
			return nil, err
		}
		trainer.Brands = brands
	}

	if err := s.trainerRepo.Create(trainer); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return trainer, nil
}

func (s *TrainerService) Update(id string, req *dto.UpdateTrainerRequest) (*models.Trainer, error) {
	trainer, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		trainer.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		trainer.LastName = *req.LastName
	}
	if req.Email != nil {
		trainer.Email = *req.Email
	}
	if req.Phone != nil {
		trainer.Phone = *req.Phone
	}
	if req.Address != nil {
		trainer.Address = *req.Address
	}
	if req.VATNumber != nil {
		trainer.VATNumber = *req.VATNumber
	}
	if req.LinkedInURL != nil {
		trainer.LinkedInURL = *req.LinkedInURL
	}
	if req.Website != nil {
		trainer.Website = *req.Website
	}
	if req.DefaultDayRate != nil {
		trainer.DefaultDayRate = req.DefaultDayRate
	}
	if req.Specializations != nil {
		trainer.Specializations = specializationsJSON(req.Specializations)
	}
	if req.Tags != nil {
		trainer.Tags = *req.Tags
	}
	if req.Region != nil {
		trainer.Region = *req.Region
	}
	if req.Bio != nil {
		trainer.Bio = *req.Bio
	}
	if req.Notes != nil {
		trainer.Notes = *req.Notes
	}
	if req.BrandIDs != nil {
		brands, err := s.resolveBrands(req.BrandIDs)
		if err != nil {
			return nil, err
		}
		trainer.Brands = brands
	}

	if err := s.trainerRepo.Update(trainer); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return trainer, nil
}

// UpdateOwnProfile applies the trainer-portal subset of fields.
func (s *TrainerService) UpdateOwnProfile(userID string, req *dto.UpdateTrainerProfileRequest) (*models.Trainer, error) {
	trainer, err := s.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		trainer.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		trainer.LastName = *req.LastName
	}
	if req.Phone != nil {
		trainer.Phone = *req.Phone
	}
	if req.Address != nil {
		trainer.Address = *req.Address
	}
	if req.VATNumber != nil {
		trainer.VATNumber = *req.VATNumber
	}
	if req.LinkedInURL != nil {
		trainer.LinkedInURL = *req.LinkedInURL
	}
	if req.Website != nil {
		trainer.Website = *req.Website
	}
	if req.DefaultDayRate != nil {
		trainer.DefaultDayRate = req.DefaultDayRate
	}
	if req.Specializations != nil {
		trainer.Specializations = specializationsJSON(req.Specializations)
	}
	if req.Region != nil {
		trainer.Region = *req.Region
	}
	if req.Bio != nil {
		trainer.Bio = *req.Bio
	}

	if err := s.trainerRepo.Update(trainer); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return trainer, nil
}

func (s *TrainerService) Delete(id string) error {
	if err := s.trainerRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrTrainerNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
