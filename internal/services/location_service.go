package services

import (
	"errors"

	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/repositories"
	"github.com/yellowboat/backoffice/internal/services/dto"
	"github.com/yellowboat/backoffice/pkg/apperrors"
)

type LocationService struct {
	locationRepo repositories.LocationRepository
}

func NewLocationService(locationRepo repositories.LocationRepository) *LocationService {
	return &LocationService{locationRepo: locationRepo}
}

func (s *LocationService) List(search string) ([]models.Location, error) {
	locations, err := s.locationRepo.FindAll(search)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return locations, nil
}

// ListPublic serializes the trainer-facing view without billing data.
func (s *LocationService) ListPublic(search string) ([]dto.LocationPublicView, error) {
	locations, err := s.List(search)
	if err != nil {
		return nil, err
	}
	views := make([]dto.LocationPublicView, 0, len(locations))
	for i := range locations {
		views = append(views, dto.NewLocationPublicView(&locations[i]))
	}
	return views, nil
}

func (s *LocationService) Get(id string) (*models.Location, error) {
	location, err := s.locationRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrLocationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return location, nil
}

func (s *LocationService) GetPublic(id string) (*dto.LocationPublicView, error) {
	location, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	view := dto.NewLocationPublicView(location)
	return &view, nil
}

func (s *LocationService) Create(req *dto.CreateLocationRequest) (*models.Location, error) {
	location := &models.Location{
		Name:              req.Name,
		Street:            req.Street,
		PostalCode:        req.PostalCode,
		City:              req.City,
		Country:           req.Country,
		BillingName:       req.BillingName,
		BillingStreet:     req.BillingStreet,
		BillingPostalCode: req.BillingPostalCode,
		BillingCity:       req.BillingCity,
		BillingCountry:    req.BillingCountry,
		ContactName:       req.ContactName,
		ContactEmail:      req.ContactEmail,
		ContactPhone:      req.ContactPhone,
		Description:       req.Description,
		MaxParticipants:   req.MaxParticipants,
		Features:          req.Features,
		WebsiteLink:       req.WebsiteLink,
		CateringAvailable: req.CateringAvailable,
		RentalCost:        req.RentalCost,
		RentalCostType:    req.RentalCostType,
		Parking:           req.Parking,
		Directions:        req.Directions,
		ParticipantInfo:   req.ParticipantInfo,
	}

	if err := s.locationRepo.Create(location); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return location, nil
}

func (s *LocationService) Update(id string, req *dto.UpdateLocationRequest) (*models.Location, error) {
	location, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		location.Name = *req.Name
	}
	if req.Street != nil {
		location.Street = *req.Street
	}
	if req.PostalCode != nil {
		location.PostalCode = *req.PostalCode
	}
	if req.City != nil {
		location.City = *req.City
	}
	if req.Country != nil {
		location.Country = *req.Country
	}
	if req.BillingName != nil {
		location.BillingName = *req.BillingName
	}
	if req.BillingStreet != nil {
		location.BillingStreet = *req.BillingStreet
	}
	if req.BillingPostalCode != nil {
		location.BillingPostalCode = *req.BillingPostalCode
	}
	if req.BillingCity != nil {
		location.BillingCity = *req.BillingCity
	}
	if req.BillingCountry != nil {
		location.BillingCountry = *req.BillingCountry
	}
	if req.ContactName != nil {
		location.ContactName = *req.ContactName
	}
	if req.ContactEmail != nil {
		location.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		location.ContactPhone = *req.ContactPhone
	}
	if req.Description != nil {
		location.Description = *req.Description
	}
	if req.MaxParticipants != nil {
		location.MaxParticipants = req.MaxParticipants
	}
	if req.Features != nil {
		location.Features = *req.Features
	}
	if req.WebsiteLink != nil {
		location.WebsiteLink = *req.WebsiteLink
	}
	if req.CateringAvailable != nil {
		location.CateringAvailable = *req.CateringAvailable
	}
	if req.RentalCost != nil {
		location.RentalCost = req.RentalCost
	}
	if req.RentalCostType != nil {
		location.RentalCostType = *req.RentalCostType
	}
	if req.Parking != nil {
		location.Parking = *req.Parking
	}
	if req.Directions != nil {
		location.Directions = *req.Directions
	}
	if req.ParticipantInfo != nil {
		location.ParticipantInfo = *req.ParticipantInfo
	}

	if err := s.locationRepo.Update(location); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return location, nil
}

func (s *LocationService) Delete(id string) error {
	if err := s.locationRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrLocationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
