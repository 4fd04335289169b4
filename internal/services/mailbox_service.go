package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yellowboat/backoffice/internal/email"
	"github.com/yellowboat/backoffice/internal/logger"
	"github.com/yellowboat/backoffice/internal/mailboxapi"
	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/repositories"
	"github.com/yellowboat/backoffice/internal/services/dto"
	"github.com/yellowboat/backoffice/pkg/apperrors"

	"gorm.io/datatypes"
)

// MailboxService implements the per-user platform mailbox: folders,
// sending with local delivery, drafts and RFC-style threading.
type MailboxService struct {
	mailboxRepo repositories.MailboxRepository
	userRepo    repositories.UserRepository
	provider    email.Provider
	mailboxAPI  *mailboxapi.Client
}

func NewMailboxService(
	mailboxRepo repositories.MailboxRepository,
	userRepo repositories.UserRepository,
	provider email.Provider,
	mailboxAPI *mailboxapi.Client,
) *MailboxService {
	return &MailboxService{
		mailboxRepo: mailboxRepo,
		userRepo:    userRepo,
		provider:    provider,
		mailboxAPI:  mailboxAPI,
	}
}

func addressesJSON(addrs []string) datatypes.JSON {
	if addrs == nil {
		addrs = []string{}
	}
	b, _ := json.Marshal(addrs)
	return datatypes.JSON(b)
}

func addressesFromJSON(raw datatypes.JSON) []string {
	var addrs []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &addrs)
	}
	return addrs
}

func newMessageID(domain string) string {
	if domain == "" {
		domain = "localhost"
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}

func (s *MailboxService) requireMailbox(user *models.User) (string, error) {
	if user.PlatformEmail == nil || *user.PlatformEmail == "" {
		return "", apperrors.ErrInvalidOperation("mailbox",
			"No platform mailbox is set up for this account")
	}
	return *user.PlatformEmail, nil
}

func (s *MailboxService) ListFolder(user *models.User, folder models.MailFolder, limit, offset int) ([]models.MailboxEmail, int64, error) {
	if !models.ValidMailFolder(folder) {
		return nil, 0, apperrors.ErrInvalidStatus("mailbox",
			"Folder must be one of: inbox, sent, drafts, trash, archive")
	}
	emails, total, err := s.mailboxRepo.FindByFolder(user.ID, folder, limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return emails, total, nil
}

func (s *MailboxService) Get(user *models.User, id string) (*models.MailboxEmail, error) {
	msg, err := s.mailboxRepo.FindByID(user.ID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return msg, nil
}

// Send stores the email in the sender's sent folder and delivers copies:
// platform recipients get a row in their inbox, external recipients go
// out through SMTP. With SaveAsDraft it lands in drafts instead.
func (s *MailboxService) Send(user *models.User, req *dto.SendEmailRequest) (*models.MailboxEmail, error) {
	fromAddress, err := s.requireMailbox(user)
	if err != nil {
		return nil, err
	}

	var msg *models.MailboxEmail
	if req.DraftID != "" {
		msg, err = s.Get(user, req.DraftID)
		if err != nil {
			return nil, err
		}
		if !msg.IsDraft {
			return nil, apperrors.ErrInvalidOperation("mailbox",
				"Only drafts can be sent or updated this way")
		}
	} else {
		msg = &models.MailboxEmail{
			OwnerID:   user.ID,
			MessageID: newMessageID(s.mailboxAPI.Domain()),
		}
	}

	msg.FromAddress = fromAddress
	msg.FromName = user.FirstName + " " + user.LastName
	msg.To = addressesJSON(req.To)
	msg.Cc = addressesJSON(req.Cc)
	msg.Bcc = addressesJSON(req.Bcc)
	msg.Subject = req.Subject
	msg.BodyText = req.BodyText
	msg.BodyHTML = req.BodyHTML
	msg.Direction = "outbound"

	// Thread off the referenced message when replying.
	if req.InReplyTo != "" {
		msg.InReplyTo = req.InReplyTo
		if parent, err := s.mailboxRepo.FindByMessageID(req.InReplyTo); err == nil && parent.ThreadID != "" {
			msg.ThreadID = parent.ThreadID
		} else {
			msg.ThreadID = req.InReplyTo
		}
	} else if msg.ThreadID == "" {
		msg.ThreadID = msg.MessageID
	}

	if req.SaveAsDraft {
		msg.Folder = models.MailFolderDrafts
		msg.IsDraft = true
		return s.save(msg, req.DraftID != "")
	}

	if len(req.To) == 0 {
		return nil, apperrors.NewBadRequestError("At least one recipient is required")
	}

	now := time.Now()
	msg.Folder = models.MailFolderSent
	msg.IsDraft = false
	msg.IsRead = true
	msg.SentAt = &now

	stored, err := s.save(msg, req.DraftID != "")
	if err != nil {
		return nil, err
	}

	s.deliver(stored, req)
	return stored, nil
}

func (s *MailboxService) save(msg *models.MailboxEmail, update bool) (*models.MailboxEmail, error) {
	var err error
	if update {
		err = s.mailboxRepo.Update(msg)
	} else {
		err = s.mailboxRepo.Create(msg)
	}
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return msg, nil
}

// deliver fans the message out to each recipient. Local platform
// addresses get an inbox copy; everything else goes through SMTP.
// Delivery problems are logged, the send itself has already succeeded.
func (s *MailboxService) deliver(msg *models.MailboxEmail, req *dto.SendEmailRequest) {
	now := time.Now()
	recipients := append(append(append([]string{}, req.To...), req.Cc...), req.Bcc...)

	seen := make(map[string]bool)
	for _, addr := range recipients {
		if seen[addr] {
			continue
		}
		seen[addr] = true

		owner, err := s.userRepo.FindByPlatformEmail(addr)
		if err == nil {
			copyMsg := &models.MailboxEmail{
				OwnerID:     owner.ID,
				MessageID:   newMessageID(s.mailboxAPI.Domain()),
				InReplyTo:   msg.InReplyTo,
				ThreadID:    msg.ThreadID,
				FromAddress: msg.FromAddress,
				FromName:    msg.FromName,
				To:          msg.To,
				Cc:          msg.Cc,
				Subject:     msg.Subject,
				BodyText:    msg.BodyText,
				BodyHTML:    msg.BodyHTML,
				Folder:      models.MailFolderInbox,
				Direction:   "inbound",
				ReceivedAt:  &now,
			}
			if err := s.mailboxRepo.Create(copyMsg); err != nil {
				logger.Error("mailbox local delivery failed", "to", addr, "error", err)
			}
			continue
		}

		if err := s.provider.Send(addr, msg.Subject, msg.BodyText); err != nil {
			logger.Error("mailbox external delivery failed", "to", addr, "error", err)
		}
	}
}

// UpdateDraft edits a draft in place.
func (s *MailboxService) UpdateDraft(user *models.User, id string, req *dto.UpdateEmailRequest) (*models.MailboxEmail, error) {
	msg, err := s.Get(user, id)
	if err != nil {
		return nil, err
	}
	if !msg.IsDraft {
		return nil, apperrors.ErrInvalidOperation("mailbox", "Only drafts can be edited")
	}

	if req.To != nil {
		msg.To = addressesJSON(req.To)
	}
	if req.Cc != nil {
		msg.Cc = addressesJSON(req.Cc)
	}
	if req.Bcc != nil {
		msg.Bcc = addressesJSON(req.Bcc)
	}
	if req.Subject != nil {
		msg.Subject = *req.Subject
	}
	if req.BodyText != nil {
		msg.BodyText = *req.BodyText
	}
	if req.BodyHTML != nil {
		msg.BodyHTML = *req.BodyHTML
	}

	return s.save(msg, true)
}

func (s *MailboxService) MarkRead(user *models.User, id string, read bool) (*models.MailboxEmail, error) {
	msg, err := s.Get(user, id)
	if err != nil {
		return nil, err
	}
	msg.IsRead = read
	return s.save(msg, true)
}

func (s *MailboxService) ToggleStar(user *models.User, id string) (*models.MailboxEmail, error) {
	msg, err := s.Get(user, id)
	if err != nil {
		return nil, err
	}
	msg.IsStarred = !msg.IsStarred
	return s.save(msg, true)
}

func (s *MailboxService) Move(user *models.User, id string, folder models.MailFolder) (*models.MailboxEmail, error) {
	if !models.ValidMailFolder(folder) {
		return nil, apperrors.ErrInvalidStatus("mailbox",
			"Folder must be one of: inbox, sent, drafts, trash, archive")
	}

	msg, err := s.Get(user, id)
	if err != nil {
		return nil, err
	}

	if folder == models.MailFolderDrafts && !msg.IsDraft {
		return nil, apperrors.ErrInvalidOperation("mailbox",
			"Only drafts can be moved to the drafts folder")
	}

	msg.Folder = folder
	return s.save(msg, true)
}

// Delete moves the email to trash; deleting from trash removes it for
// good, attachments included.
func (s *MailboxService) Delete(user *models.User, id string) error {
	msg, err := s.Get(user, id)
	if err != nil {
		return err
	}

	if msg.Folder != models.MailFolderTrash {
		msg.Folder = models.MailFolderTrash
		_, err := s.save(msg, true)
		return err
	}

	if err := s.mailboxRepo.Delete(user.ID, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *MailboxService) UnreadCount(user *models.User) (int64, error) {
	count, err := s.mailboxRepo.CountUnread(user.ID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *MailboxService) Thread(user *models.User, threadID string) ([]models.MailboxEmail, error) {
	emails, err := s.mailboxRepo.FindThread(user.ID, threadID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return emails, nil
}
