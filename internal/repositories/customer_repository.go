package repositories

import (
	"errors"

	"github.com/yellowboat/backoffice/internal/models"

	"gorm.io/gorm"
)

var ErrCustomerNotFound = errors.New("customer not found")

type CustomerRepository interface {
	FindByID(id string) (*models.Customer, error)
	Create(customer *models.Customer) error
	Update(customer *models.Customer) error
	Delete(id string) error
	FindAll(search string, limit, offset int) ([]models.Customer, int64, error)
	CountTrainings(customerID string) (int64, error)
}

type CustomerRepositoryImpl struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &CustomerRepositoryImpl{db: db}
}

func (r *CustomerRepositoryImpl) FindByID(id string) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Preload("Brands").First(&customer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}

func (r *CustomerRepositoryImpl) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

func (r *CustomerRepositoryImpl) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

func (r *CustomerRepositoryImpl) Delete(id string) error {
	result := r.db.Select("Brands").Where("id = ?", id).Delete(&models.Customer{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

func (r *CustomerRepositoryImpl) FindAll(search string, limit, offset int) ([]models.Customer, int64, error) {
	var customers []models.Customer
	query := r.db.Model(&models.Customer{})

	if search != "" {
		pattern := ContainsPattern(search)
		query = query.Where(
			`LOWER(company_name) LIKE ? ESCAPE '\' OR LOWER(last_name) LIKE ? ESCAPE '\' OR LOWER(contact_email) LIKE ? ESCAPE '\' OR LOWER(city) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("company_name ASC").Limit(limit).Offset(offset).Find(&customers).Error
	return customers, total, err
}

func (r *CustomerRepositoryImpl) CountTrainings(customerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Training{}).Where("customer_id = ?", customerID).Count(&count).Error
	return count, err
}
