package services

import (
	"errors"
	"time"

	"github.com/yellowboat/backoffice/internal/auth"
	"github.com/yellowboat/backoffice/internal/config"
	"github.com/yellowboat/backoffice/internal/logger"
	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/ratelimit"
	"github.com/yellowboat/backoffice/internal/repositories"
	"github.com/yellowboat/backoffice/pkg/apperrors"
)

type AuthService struct {
	cfg          *config.Config
	userRepo     repositories.UserRepository
	trainerRepo  repositories.TrainerRepository
	limiter      *ratelimit.Limiter
	notification *NotificationService
}

func NewAuthService(
	cfg *config.Config,
	userRepo repositories.UserRepository,
	trainerRepo repositories.TrainerRepository,
	limiter *ratelimit.Limiter,
	notification *NotificationService,
) *AuthService {
	return &AuthService{
		cfg:          cfg,
		userRepo:     userRepo,
		trainerRepo:  trainerRepo,
		limiter:      limiter,
		notification: notification,
	}
}

// Login authenticates by username. clientKey (the caller's IP) feeds the
// rate limiter; lockout answers before credentials are even checked.
func (s *AuthService) Login(clientKey, username, password string) (string, *models.User, error) {
	if locked, retryIn := s.limiter.IsLockedOut(clientKey); locked {
		return "", nil, apperrors.ErrTooManyLoginAttempts.WithDetails(map[string]interface{}{
			"retry_after_seconds": int(retryIn.Seconds()) + 1,
		})
	}

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.limiter.RecordFailure(clientKey)
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		s.limiter.RecordFailure(clientKey)
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", nil, apperrors.ErrAccountInactive
	}

	s.limiter.Reset(clientKey)

	if user.Role == models.UserRoleTrainer {
		s.EnsureTrainerLink(user)
	}

	token, err := auth.GenerateToken(
		s.cfg.JWT.Secret, user.ID, string(user.Role),
		time.Duration(s.cfg.JWT.TTL)*time.Minute)
	if err != nil {
		return "", nil, apperrors.InternalError(err)
	}

	return token, user, nil
}

// EnsureTrainerLink connects a trainer-role user to the trainer profile
// with the same email. Idempotent, failures only logged.
func (s *AuthService) EnsureTrainerLink(user *models.User) {
	if _, err := s.trainerRepo.FindByUserID(user.ID); err == nil {
		return
	}

	trainer, err := s.trainerRepo.FindByEmail(user.Email)
	if err != nil {
		return
	}
	if trainer.UserID != nil {
		return
	}

	if err := s.trainerRepo.LinkUser(trainer.ID, user.ID); err != nil {
		logger.Error("trainer auto-link failed", "user_id", user.ID, "trainer_id", trainer.ID, "error", err)
		return
	}
	logger.Info("trainer profile linked to account", "user_id", user.ID, "trainer_id", trainer.ID)
}

// RegisterUser creates a staff or trainer account (admin operation).
func (s *AuthService) RegisterUser(username, emailAddr, password, role, firstName, lastName string) (*models.User, error) {
	if !models.ValidUserRole(models.UserRole(role)) {
		return nil, apperrors.ErrInvalidStatus("user",
			"Role must be one of: admin, backoffice_user, trainer")
	}
	if err := auth.ValidatePassword(password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     username,
		Email:        emailAddr,
		PasswordHash: hash,
		Role:         models.UserRole(role),
		IsActive:     true,
		FirstName:    firstName,
		LastName:     lastName,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrUsernameAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if user.Role == models.UserRoleTrainer {
		s.EnsureTrainerLink(user)
	}

	s.notification.SendWelcome(user)
	return user, nil
}

func (s *AuthService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// UpdateProfile applies the caller's own profile changes.
func (s *AuthService) UpdateProfile(user *models.User, emailAddr, firstName, lastName, password *string) (*models.User, error) {
	if emailAddr != nil && *emailAddr != user.Email {
		if _, err := s.userRepo.FindByEmail(*emailAddr); err == nil {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		user.Email = *emailAddr
	}
	if firstName != nil {
		user.FirstName = *firstName
	}
	if lastName != nil {
		user.LastName = *lastName
	}
	if password != nil {
		if err := auth.ValidatePassword(*password); err != nil {
			return nil, apperrors.ErrWeakPassword
		}
		hash, err := auth.HashPassword(*password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *AuthService) ListUsers(limit, offset int) ([]models.User, int64, error) {
	users, total, err := s.userRepo.FindAll(limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return users, total, nil
}

// ListRecipients returns active users for the message recipient picker.
func (s *AuthService) ListRecipients() ([]models.User, error) {
	staff, err := s.userRepo.FindActiveStaff()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	trainers, err := s.userRepo.FindByRole(models.UserRoleTrainer)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	users := staff
	for _, t := range trainers {
		if t.IsActive {
			users = append(users, t)
		}
	}
	return users, nil
}

// DeleteUser removes an account. Admins cannot delete themselves; the
// linked trainer profile survives with its account link cleared.
func (s *AuthService) DeleteUser(actor *models.User, userID string) error {
	if actor.ID == userID {
		return apperrors.ErrCannotModifySelf
	}

	if err := s.userRepo.Delete(userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
