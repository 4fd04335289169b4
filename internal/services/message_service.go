package services

import (
	"errors"

	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/repositories"
	"github.com/yellowboat/backoffice/internal/services/dto"
	"github.com/yellowboat/backoffice/pkg/apperrors"
)

type MessageService struct {
	messageRepo repositories.MessageRepository
	userRepo    repositories.UserRepository
}

func NewMessageService(messageRepo repositories.MessageRepository, userRepo repositories.UserRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo, userRepo: userRepo}
}

// canAccess decides visibility: sender, recipient, or any staff member
// for broadcast messages.
func canAccess(message *models.Message, user *models.User) bool {
	if message.SenderID == user.ID {
		return true
	}
	if message.RecipientID != nil {
		return *message.RecipientID == user.ID
	}
	return user.Role.IsStaff()
}

func (s *MessageService) List(user *models.User, limit, offset int) ([]models.Message, int64, error) {
	messages, total, err := s.messageRepo.FindForUser(user.ID, user.Role.IsStaff(), limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return messages, total, nil
}

func (s *MessageService) Get(user *models.User, id string) (*models.Message, error) {
	message, err := s.messageRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrMessageNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !canAccess(message, user) {
		return nil, apperrors.NewForbiddenError("You do not have access to this message")
	}

	// Opening a message addressed to the caller marks it read.
	if !message.IsRead && message.SenderID != user.ID {
		if err := s.messageRepo.MarkRead(id); err == nil {
			message.IsRead = true
		}
	}

	return message, nil
}

func (s *MessageService) Create(sender *models.User, req *dto.CreateMessageRequest) (*models.Message, error) {
	if req.RecipientID != nil {
		if _, err := s.userRepo.FindByID(*req.RecipientID); err != nil {
			return nil, apperrors.NewBadRequestError("Unknown recipient")
		}
	}

	messageType := models.MessageTypeMessage
	if req.MessageType != "" {
		messageType = models.MessageType(req.MessageType)
	}

	if req.ParentID != nil {
		parent, err := s.messageRepo.FindByID(*req.ParentID)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Unknown parent message")
		}
		if !canAccess(parent, sender) {
			return nil, apperrors.NewForbiddenError("You cannot reply to this message")
		}
	}

	message := &models.Message{
		SenderID:     sender.ID,
		RecipientID:  req.RecipientID,
		ParentID:     req.ParentID,
		MessageType:  messageType,
		Subject:      req.Subject,
		Content:      req.Content,
		PageURL:      req.PageURL,
		ErrorDetails: req.ErrorDetails,
		Status:       models.MessageStatusOpen,
	}

	if err := s.messageRepo.Create(message); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return message, nil
}

// Update changes the workflow status or read flag. Status changes are a
// staff operation.
func (s *MessageService) Update(user *models.User, id string, req *dto.UpdateMessageRequest) (*models.Message, error) {
	message, err := s.messageRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrMessageNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !canAccess(message, user) {
		return nil, apperrors.NewForbiddenError("You do not have access to this message")
	}

	if req.Status != nil {
		if !user.Role.IsStaff() {
			return nil, apperrors.NewForbiddenError("Only staff can change the message status")
		}
		message.Status = models.MessageStatus(*req.Status)
	}
	if req.IsRead != nil {
		message.IsRead = *req.IsRead
	}

	if err := s.messageRepo.Update(message); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return message, nil
}

func (s *MessageService) Delete(user *models.User, id string) error {
	message, err := s.messageRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrMessageNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if message.SenderID != user.ID && !user.Role.IsStaff() {
		return apperrors.NewForbiddenError("You cannot delete this message")
	}

	if err := s.messageRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *MessageService) UnreadCount(user *models.User) (int64, error) {
	count, err := s.messageRepo.CountUnread(user.ID, user.Role.IsStaff())
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}
