package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/yellowboat/backoffice/internal/auth"
	"github.com/yellowboat/backoffice/internal/logger"
	"github.com/yellowboat/backoffice/internal/mailboxapi"
	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/repositories"
	"github.com/yellowboat/backoffice/internal/services/dto"
	"github.com/yellowboat/backoffice/pkg/apperrors"
)

type RegistrationService struct {
	regRepo      repositories.RegistrationRepository
	userRepo     repositories.UserRepository
	trainerRepo  repositories.TrainerRepository
	mailboxAPI   *mailboxapi.Client
	notification *NotificationService
}

func NewRegistrationService(
	regRepo repositories.RegistrationRepository,
	userRepo repositories.UserRepository,
	trainerRepo repositories.TrainerRepository,
	mailboxAPI *mailboxapi.Client,
	notification *NotificationService,
) *RegistrationService {
	return &RegistrationService{
		regRepo:      regRepo,
		userRepo:     userRepo,
		trainerRepo:  trainerRepo,
		mailboxAPI:   mailboxAPI,
		notification: notification,
	}
}

// Register files a public trainer signup for staff review.
func (s *RegistrationService) Register(req *dto.RegisterTrainerRequest) (*models.TrainerRegistration, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	reg := &models.TrainerRegistration{
		Email:           strings.ToLower(req.Email),
		PasswordHash:    hash,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		Address:         req.Address,
		VATNumber:       req.VATNumber,
		LinkedInURL:     req.LinkedInURL,
		Website:         req.Website,
		PhotoURL:        req.PhotoURL,
		DayRate:         req.DayRate,
		Specializations: specializationsJSON(req.Specializations),
		Region:          req.Region,
		Bio:             req.Bio,
		Status:          models.RegistrationStatusPending,
	}

	if err := s.regRepo.Create(reg); err != nil {
		if errors.Is(err, repositories.ErrRegistrationExists) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, apperrors.InternalError(err)
	}

	s.notification.SendRegistrationReceived(reg)
	s.notification.NotifyStaffNewRegistration(reg)
	return reg, nil
}

func (s *RegistrationService) List(status models.RegistrationStatus) ([]models.TrainerRegistration, error) {
	regs, err := s.regRepo.FindAll(status)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return regs, nil
}

func (s *RegistrationService) Get(id string) (*models.TrainerRegistration, error) {
	reg, err := s.regRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrRegistrationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return reg, nil
}

// Approve creates the portal account and trainer profile, provisions a
// platform mailbox (best-effort) and emails the applicant.
func (s *RegistrationService) Approve(actor *models.User, id string) (*models.TrainerRegistration, error) {
	reg, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if reg.Status != models.RegistrationStatusPending {
		return nil, apperrors.ErrRegistrationNotPending
	}

	if _, err := s.userRepo.FindByEmail(reg.Email); err == nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	user := &models.User{
		Username:     reg.Email,
		Email:        reg.Email,
		PasswordHash: reg.PasswordHash,
		Role:         models.UserRoleTrainer,
		IsActive:     true,
		FirstName:    reg.FirstName,
		LastName:     reg.LastName,
	}

	platformEmail := ""
	if ok, address, _ := s.provisionMailbox(reg.LastName); ok {
		user.PlatformEmail = &address
		platformEmail = address
	}

	trainer := &models.Trainer{
		FirstName:       reg.FirstName,
		LastName:        reg.LastName,
		Email:           reg.Email,
		Phone:           reg.Phone,
		Address:         reg.Address,
		VATNumber:       reg.VATNumber,
		LinkedInURL:     reg.LinkedInURL,
		Website:         reg.Website,
		PhotoPath:       reg.PhotoURL,
		DefaultDayRate:  reg.DayRate,
		Specializations: reg.Specializations,
		Region:          reg.Region,
		Bio:             reg.Bio,
	}

	now := time.Now()
	reg.Status = models.RegistrationStatusApproved
	reg.ReviewedAt = &now
	reg.ReviewedBy = actor.Username

	if err := s.regRepo.Approve(reg, user, trainer); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notification.SendRegistrationApproved(reg, user.Username, platformEmail)
	return reg, nil
}

// provisionMailbox derives lastname@domain, resolving collisions with a
// numeric suffix against existing platform addresses.
func (s *RegistrationService) provisionMailbox(lastName string) (bool, string, string) {
	if !s.mailboxAPI.Enabled() {
		return false, "", ""
	}

	localPart := mailboxLocalPart(lastName)
	if localPart == "" {
		return false, "", ""
	}

	candidate := localPart
	for i := 2; i <= 20; i++ {
		address := candidate + "@" + s.mailboxAPI.Domain()
		if _, err := s.userRepo.FindByPlatformEmail(address); err != nil {
			return s.mailboxAPI.CreateMailbox(candidate)
		}
		candidate = fmt.Sprintf("%s%d", localPart, i)
	}

	logger.Warn("mailbox provisioning: no free address found", "local_part", localPart)
	return false, "", ""
}

// mailboxLocalPart folds a last name to a safe mailbox local part.
func mailboxLocalPart(lastName string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(lastName) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r):
			b.WriteRune(r)
		case r == 'ä':
			b.WriteString("ae")
		case r == 'ö':
			b.WriteString("oe")
		case r == 'ü':
			b.WriteString("ue")
		case r == 'ß':
			b.WriteString("ss")
		}
	}
	return b.String()
}

// Reject declines a pending registration, optionally with a reason that
// is included in the notification email.
func (s *RegistrationService) Reject(actor *models.User, id, reason string) (*models.TrainerRegistration, error) {
	reg, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if reg.Status != models.RegistrationStatusPending {
		return nil, apperrors.ErrRegistrationNotPending
	}

	now := time.Now()
	reg.Status = models.RegistrationStatusRejected
	reg.ReviewedAt = &now
	reg.ReviewedBy = actor.Username

	if err := s.regRepo.Update(reg); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notification.SendRegistrationRejected(reg, reason)
	return reg, nil
}
