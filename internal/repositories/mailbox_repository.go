package repositories

import (
	"errors"

	"github.com/yellowboat/backoffice/internal/models"

	"gorm.io/gorm"
)

var ErrEmailNotFound = errors.New("email not found")

type MailboxRepository interface {
	FindByID(ownerID, id string) (*models.MailboxEmail, error)
	FindByMessageID(messageID string) (*models.MailboxEmail, error)
	Create(email *models.MailboxEmail) error
	Update(email *models.MailboxEmail) error
	Delete(ownerID, id string) error
	FindByFolder(ownerID string, folder models.MailFolder, limit, offset int) ([]models.MailboxEmail, int64, error)
	CountUnread(ownerID string) (int64, error)
	FindThread(ownerID, threadID string) ([]models.MailboxEmail, error)
}

type MailboxRepositoryImpl struct {
	db *gorm.DB
}

func NewMailboxRepository(db *gorm.DB) MailboxRepository {
	return &MailboxRepositoryImpl{db: db}
}

func (r *MailboxRepositoryImpl) FindByID(ownerID, id string) (*models.MailboxEmail, error) {
	var email models.MailboxEmail
	err := r.db.Preload("Attachments").
		First(&email, "id = ? AND owner_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, err
	}
	return &email, nil
}

func (r *MailboxRepositoryImpl) FindByMessageID(messageID string) (*models.MailboxEmail, error) {
	var email models.MailboxEmail
	err := r.db.First(&email, "message_id = ?", messageID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmailNotFound
		}
		return nil, err
	}
	return &email, nil
}

func (r *MailboxRepositoryImpl) Create(email *models.MailboxEmail) error {
	return r.db.Create(email).Error
}

func (r *MailboxRepositoryImpl) Update(email *models.MailboxEmail) error {
	return r.db.Omit("Attachments").Save(email).Error
}

func (r *MailboxRepositoryImpl) Delete(ownerID, id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email_id = ?", id).Delete(&models.EmailAttachment{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ? AND owner_id = ?", id, ownerID).
			Delete(&models.MailboxEmail{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrEmailNotFound
		}
		return nil
	})
}

func (r *MailboxRepositoryImpl) FindByFolder(ownerID string, folder models.MailFolder, limit, offset int) ([]models.MailboxEmail, int64, error) {
	var emails []models.MailboxEmail
	query := r.db.Model(&models.MailboxEmail{}).
		Where("owner_id = ? AND folder = ?", ownerID, folder)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&emails).Error
	return emails, total, err
}

func (r *MailboxRepositoryImpl) CountUnread(ownerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.MailboxEmail{}).
		Where("owner_id = ? AND folder = ? AND is_read = ?",
			ownerID, models.MailFolderInbox, false).
		Count(&count).Error
	return count, err
}

func (r *MailboxRepositoryImpl) FindThread(ownerID, threadID string) ([]models.MailboxEmail, error) {
	var emails []models.MailboxEmail
	err := r.db.Where("owner_id = ? AND thread_id = ?", ownerID, threadID).
		Order("created_at ASC").Find(&emails).Error
	return emails, err
}
