package repositories

import (
	"errors"

	"github.com/yellowboat/backoffice/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByPlatformEmail(address string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(userID string) error
	FindAll(limit, offset int) ([]models.User, int64, error)
	FindActiveStaff() ([]models.User, error)
	FindByRole(role models.UserRole) ([]models.User, error)
	CountAll() (int64, error)
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByPlatformEmail(address string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "platform_email = ?", address).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	var existing models.User
	if err := r.db.Where("username = ? OR email = ?", user.Username, user.Email).
		First(&existing).Error; err == nil {
		return ErrUserAlreadyExists
	}

	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) Update(user *models.User) error {
	result := r.db.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"username":       user.Username,
		"email":          user.Email,
		"password_hash":  user.PasswordHash,
		"role":           user.Role,
		"is_active":      user.IsActive,
		"first_name":     user.FirstName,
		"last_name":      user.LastName,
		"platform_email": user.PlatformEmail,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Delete removes the user, their mailbox and any trainer link in one
// transaction. The Trainer row itself survives.
func (r *UserRepositoryImpl) Delete(userID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Trainer{}).Where("user_id = ?", userID).
			Update("user_id", nil).Error; err != nil {
			return err
		}

		var emailIDs []string
		if err := tx.Model(&models.MailboxEmail{}).Where("owner_id = ?", userID).
			Pluck("id", &emailIDs).Error; err != nil {
			return err
		}
		if len(emailIDs) > 0 {
			if err := tx.Where("email_id IN ?", emailIDs).
				Delete(&models.EmailAttachment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("owner_id = ?", userID).
				Delete(&models.MailboxEmail{}).Error; err != nil {
				return err
			}
		}

		result := tx.Where("id = ?", userID).Delete(&models.User{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}

func (r *UserRepositoryImpl) FindAll(limit, offset int) ([]models.User, int64, error) {
	var users []models.User

	var total int64
	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error
	return users, total, err
}

// FindActiveStaff returns active admin and backoffice users, the audience
// for broadcast messages and admin notification emails.
func (r *UserRepositoryImpl) FindActiveStaff() ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role IN ? AND is_active = ?",
		[]models.UserRole{models.UserRoleAdmin, models.UserRoleBackoffice}, true).
		Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) FindByRole(role models.UserRole) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("role = ?", role).Order("username ASC").Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}
