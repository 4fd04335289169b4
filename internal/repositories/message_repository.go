package repositories

import (
	"errors"
	"time"

	"github.com/yellowboat/backoffice/internal/models"

	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository interface {
	FindByID(id string) (*models.Message, error)
	Create(message *models.Message) error
	Update(message *models.Message) error
	Delete(id string) error

	// FindForUser lists messages visible to the user: sent by them,
	// addressed to them, or broadcast when the user is staff.
	FindForUser(userID string, isStaff bool, limit, offset int) ([]models.Message, int64, error)
	CountUnread(userID string, isStaff bool) (int64, error)
	MarkRead(id string) error
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) FindByID(id string) (*models.Message, error) {
	var message models.Message
	err := r.db.Preload("Sender").Preload("Recipient").Preload("Replies").
		First(&message, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (r *MessageRepositoryImpl) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *MessageRepositoryImpl) Update(message *models.Message) error {
	return r.db.Omit("Sender", "Recipient", "Replies").Save(message).Error
}

func (r *MessageRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", id).Delete(&models.Message{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Message{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrMessageNotFound
		}
		return nil
	})
}

func (r *MessageRepositoryImpl) FindForUser(userID string, isStaff bool, limit, offset int) ([]models.Message, int64, error) {
	var messages []models.Message
	query := r.db.Model(&models.Message{}).Where("parent_id IS NULL")

	if isStaff {
		query = query.Where("sender_id = ? OR recipient_id = ? OR recipient_id IS NULL", userID, userID)
	} else {
		query = query.Where("sender_id = ? OR recipient_id = ?", userID, userID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Sender").Preload("Recipient").
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&messages).Error
	return messages, total, err
}

func (r *MessageRepositoryImpl) CountUnread(userID string, isStaff bool) (int64, error) {
	var count int64
	query := r.db.Model(&models.Message{}).Where("is_read = ? AND sender_id != ?", false, userID)

	if isStaff {
		query = query.Where("recipient_id = ? OR recipient_id IS NULL", userID)
	} else {
		query = query.Where("recipient_id = ?", userID)
	}

	err := query.Count(&count).Error
	return count, err
}

func (r *MessageRepositoryImpl) MarkRead(id string) error {
	now := time.Now()
	result := r.db.Model(&models.Message{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_read": true,
		"read_at": now,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}
