package services

import (
	"errors"

	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/repositories"
	"github.com/yellowboat/backoffice/internal/services/dto"
	"github.com/yellowboat/backoffice/pkg/apperrors"
)

type CatalogService struct {
	catalogRepo repositories.CatalogRepository
}

func NewCatalogService(catalogRepo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

func (s *CatalogService) List() ([]models.TrainingCatalogEntry, error) {
	entries, err := s.catalogRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entries, nil
}

func (s *CatalogService) Get(id string) (*models.TrainingCatalogEntry, error) {
	entry, err := s.catalogRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCatalogEntryNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return entry, nil
}

func (s *CatalogService) Create(req *dto.CreateCatalogEntryRequest) (*models.TrainingCatalogEntry, error) {
	entry := &models.TrainingCatalogEntry{
		Title:             req.Title,
		ShortDescription:  req.ShortDescription,
		DurationDays:      req.DurationDays,
		TrainingType:      models.TrainingType(req.TrainingType),
		DefaultFormat:     models.TrainingFormat(req.DefaultFormat),
		DefaultLanguage:   req.DefaultLanguage,
		ChecklistTemplate: req.ChecklistTemplate,
	}

	if err := s.catalogRepo.Create(entry); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entry, nil
}

func (s *CatalogService) Update(id string, req *dto.UpdateCatalogEntryRequest) (*models.TrainingCatalogEntry, error) {
	entry, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		entry.Title = *req.Title
	}
	if req.ShortDescription != nil {
		entry.ShortDescription = *req.ShortDescription
	}
	if req.DurationDays != nil {
		entry.DurationDays = req.DurationDays
	}
	if req.TrainingType != nil {
		entry.TrainingType = models.TrainingType(*req.TrainingType)
	}
	if req.DefaultFormat != nil {
		entry.DefaultFormat = models.TrainingFormat(*req.DefaultFormat)
	}
	if req.DefaultLanguage != nil {
		entry.DefaultLanguage = *req.DefaultLanguage
	}
	if req.ChecklistTemplate != nil {
		entry.ChecklistTemplate = *req.ChecklistTemplate
	}

	if err := s.catalogRepo.Update(entry); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return entry, nil
}

func (s *CatalogService) Delete(id string) error {
	if err := s.catalogRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrCatalogEntryNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
