package services

import (
	"github.com/yellowboat/backoffice/internal/email"
	"github.com/yellowboat/backoffice/internal/logger"
	"github.com/yellowboat/backoffice/internal/models"
	"github.com/yellowboat/backoffice/internal/repositories"
)

// NotificationService sends transactional emails around the training
// workflow. Every send is best-effort: a failing mail is logged and the
// business operation that triggered it proceeds unchanged.
type NotificationService struct {
	provider email.Provider
	userRepo repositories.UserRepository
}

func NewNotificationService(provider email.Provider, userRepo repositories.UserRepository) *NotificationService {
	return &NotificationService{provider: provider, userRepo: userRepo}
}

func (s *NotificationService) send(to, subject, body string) {
	if to == "" {
		return
	}
	if err := s.provider.Send(to, subject, body); err != nil {
		logger.Error("notification email failed", "to", to, "subject", subject, "error", err)
		return
	}
	logger.Debug("notification email sent", "to", to, "subject", subject)
}

func (s *NotificationService) SendWelcome(user *models.User) {
	name := user.FirstName
	if name == "" {
		name = user.Username
	}
	subject, body := email.WelcomeBody(name)
	s.send(user.Email, subject, body)
}

func (s *NotificationService) SendRegistrationReceived(reg *models.TrainerRegistration) {
	subject, body := email.RegistrationReceivedBody(reg.FirstName)
	s.send(reg.Email, subject, body)
}

func (s *NotificationService) SendRegistrationApproved(reg *models.TrainerRegistration, username, platformEmail string) {
	subject, body := email.RegistrationApprovedBody(reg.FirstName, username, platformEmail)
	s.send(reg.Email, subject, body)
}

func (s *NotificationService) SendRegistrationRejected(reg *models.TrainerRegistration, reason string) {
	subject, body := email.RegistrationRejectedBody(reg.FirstName, reason)
	s.send(reg.Email, subject, body)
}

func (s *NotificationService) SendApplicationSubmitted(trainer *models.Trainer, training *models.Training) {
	subject, body := email.ApplicationSubmittedBody(trainer.FirstName, training.Title)
	s.send(trainer.Email, subject, body)
}

func (s *NotificationService) SendApplicationAccepted(trainer *models.Trainer, training *models.Training) {
	subject, body := email.ApplicationAcceptedBody(trainer.FirstName, training.Title, training.StartDate)
	s.send(trainer.Email, subject, body)
}

func (s *NotificationService) SendApplicationRejected(trainer *models.Trainer, training *models.Training) {
	subject, body := email.ApplicationRejectedBody(trainer.FirstName, training.Title)
	s.send(trainer.Email, subject, body)
}

// NotifyStaffNewApplication fans out to every active staff account.
func (s *NotificationService) NotifyStaffNewApplication(trainer *models.Trainer, training *models.Training) {
	staff, err := s.userRepo.FindActiveStaff()
	if err != nil {
		logger.Error("notification fan-out: loading staff failed", "error", err)
		return
	}
	subject, body := email.AdminNewApplicationBody(trainer.FullName(), training.Title)
	for _, u := range staff {
		s.send(u.Email, subject, body)
	}
}

// NotifyStaffNewRegistration fans out to every active staff account.
func (s *NotificationService) NotifyStaffNewRegistration(reg *models.TrainerRegistration) {
	staff, err := s.userRepo.FindActiveStaff()
	if err != nil {
		logger.Error("notification fan-out: loading staff failed", "error", err)
		return
	}
	subject, body := email.AdminNewRegistrationBody(reg.FirstName+" "+reg.LastName, reg.Email)
	for _, u := range staff {
		s.send(u.Email, subject, body)
	}
}

// SendStatusChanged informs the assigned trainer about a lifecycle move.
// Nothing is sent when no trainer is assigned.
func (s *NotificationService) SendStatusChanged(training *models.Training, oldStatus, newStatus models.TrainingStatus) {
	if training.Trainer == nil {
		return
	}
	subject, body := email.StatusChangedBody(
		training.Trainer.FirstName, training.Title, string(oldStatus), string(newStatus))
	s.send(training.Trainer.Email, subject, body)
}

func (s *NotificationService) SendTrainerAssigned(trainer *models.Trainer, training *models.Training) {
	subject, body := email.TrainerAssignedBody(trainer.FirstName, training.Title, training.StartDate)
	s.send(trainer.Email, subject, body)
}

func (s *NotificationService) SendTrainingReminder(training *models.Training) {
	if training.Trainer == nil {
		return
	}
	customerName := ""
	if training.Customer != nil {
		customerName = training.Customer.CompanyName
	}
	subject, body := email.TrainingReminderBody(
		training.Trainer.FirstName, training.Title, customerName, training.StartDate)
	s.send(training.Trainer.Email, subject, body)
}
