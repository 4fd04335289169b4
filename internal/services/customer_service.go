package services

import (
	"errors"

	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/repositories"
	"github.com/yellowboat/backoffice/internal/services/dto"
	"github.com/yellowboat/backoffice/pkg/apperrors"
)

type CustomerService struct {
	customerRepo repositories.CustomerRepository
	brandRepo    repositories.BrandRepository
}

func NewCustomerService(customerRepo repositories.CustomerRepository, brandRepo repositories.BrandRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, brandRepo: brandRepo}
}

func (s *CustomerService) List(search string, limit, offset int) ([]models.Customer, int64, error) {
	customers, total, err := s.customerRepo.FindAll(search, limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return customers, total, nil
}

func (s *CustomerService) Get(id string) (*models.Customer, error) {
	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return customer, nil
}

func (s *CustomerService) resolveBrands(ids []string) ([]models.Brand, error) {
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

func (s *CustomerService) Create(req *dto.CreateCustomerRequest) (*models.Customer, error) {
	customer := &models.Customer{
		CompanyName:  req.CompanyName,
		Salutation:   req.Salutation,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		VATNumber:    req.VATNumber,
		Street:       req.Street,
		PostalCode:   req.PostalCode,
		City:         req.City,
		Country:      req.Country,
		Conditions:   req.Conditions,
		Comment:      req.Comment,
		Tags:         req.Tags,
		Notes:        req.Notes,
		Status:       models.CustomerStatusActive,
	}

	if len(req.BrandIDs) > 0 {
		brands, err := s.resolveBrands(req.BrandIDs)
		if err != nil {
			return nil, err
		}
		customer.Brands = brands
	}

	if err := s.customerRepo.Create(customer); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return customer, nil
}

func (s *CustomerService) Update(id string, req *dto.UpdateCustomerRequest) (*models.Customer, error) {
	customer, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		customer.CompanyName = *req.CompanyName
	}
	if req.Salutation != nil {
		customer.Salutation = *req.Salutation
	}
	if req.FirstName != nil {
		customer.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		customer.LastName = *req.LastName
	}
	if req.ContactEmail != nil {
		customer.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		customer.ContactPhone = *req.ContactPhone
	}
	if req.VATNumber != nil {
		customer.VATNumber = *req.VATNumber
	}
	if req.Street != nil {
		customer.Street = *req.Street
	}
	if req.PostalCode != nil {
		customer.PostalCode = *req.PostalCode
	}
	if req.City != nil {
		customer.City = *req.City
	}
	if req.Country != nil {
		customer.Country = *req.Country
	}
	if req.Conditions != nil {
		customer.Conditions = *req.Conditions
	}
	if req.Comment != nil {
		customer.Comment = *req.Comment
	}
	if req.Tags != nil {
		customer.Tags = *req.Tags
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}
	if req.Status != nil {
		customer.Status = models.CustomerStatus(*req.Status)
	}
	if req.BrandIDs != nil {
		brands, err := s.resolveBrands(req.BrandIDs)
		if err != nil {
			return nil, err
		}
		customer.Brands = brands
	}

	if err := s.customerRepo.Update(customer); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return customer, nil
}

// Delete refuses while trainings still reference the customer.
func (s *CustomerService) Delete(id string) error {
	count, err := s.customerRepo.CountTrainings(id)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if count > 0 {
		return apperrors.ErrConflict(nil, "customer",
			"Customer still has trainings and cannot be deleted")
	}

	if err := s.customerRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
