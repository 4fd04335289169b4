package models

type UserRole string
type TrainingStatus string
type TrainingType string
type TrainingFormat string
type TaskStatus string
type ApplicationStatus string
type RegistrationStatus string
type CustomerStatus string
type MessageType string
type MessageStatus string
type MailFolder string

const (
	UserRoleAdmin      UserRole = "admin"
	UserRoleBackoffice UserRole = "backoffice_user"
	UserRoleTrainer    UserRole = "trainer"

	TrainingStatusLead                 TrainingStatus = "lead"
	TrainingStatusAppointmentScheduled TrainingStatus = "appointment_scheduled"
	TrainingStatusInitialContact       TrainingStatus = "initial_contact"
	TrainingStatusProposalSent         TrainingStatus = "proposal_sent"
	TrainingStatusTrainerOutreach      TrainingStatus = "trainer_outreach"
	TrainingStatusTrainerConfirmed     TrainingStatus = "trainer_confirmed"
	TrainingStatusPlanning             TrainingStatus = "planning"
	TrainingStatusDelivered            TrainingStatus = "delivered"
	TrainingStatusInvoiced             TrainingStatus = "invoiced"

	TrainingTypeOnline    TrainingType = "online"
	TrainingTypeClassroom TrainingType = "classroom"

	TrainingFormatInhouse TrainingFormat = "inhouse"
	TrainingFormatPublic  TrainingFormat = "public"

	TaskStatusOpen TaskStatus = "open"
	TaskStatusDone TaskStatus = "done"

	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	RegistrationStatusPending  RegistrationStatus = "pending"
	RegistrationStatusApproved RegistrationStatus = "approved"
	RegistrationStatusRejected RegistrationStatus = "rejected"

	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"

	MessageTypeMessage            MessageType = "message"
	MessageTypeErrorReport        MessageType = "error_report"
	MessageTypeTrainerApplication MessageType = "trainer_application"

	MessageStatusOpen        MessageStatus = "open"
	MessageStatusSolved      MessageStatus = "solved"
	MessageStatusNotSolvable MessageStatus = "not_solvable"

	MailFolderInbox   MailFolder = "inbox"
	MailFolderSent    MailFolder = "sent"
	MailFolderDrafts  MailFolder = "drafts"
	MailFolderTrash   MailFolder = "trash"
	MailFolderArchive MailFolder = "archive"
)

// AllowedStatusTransitions is the training lifecycle. Each status maps to
// the statuses it may move to; everything else is rejected.
var AllowedStatusTransitions = map[TrainingStatus][]TrainingStatus{
	TrainingStatusLead: {
		TrainingStatusAppointmentScheduled,
		TrainingStatusInitialContact,
		TrainingStatusProposalSent,
	},
	TrainingStatusAppointmentScheduled: {
		TrainingStatusInitialContact,
		TrainingStatusProposalSent,
		TrainingStatusLead,
	},
	TrainingStatusInitialContact: {
		TrainingStatusProposalSent,
		TrainingStatusLead,
	},
	TrainingStatusProposalSent: {
		TrainingStatusTrainerOutreach,
		TrainingStatusLead,
	},
	TrainingStatusTrainerOutreach: {
		TrainingStatusTrainerConfirmed,
		TrainingStatusProposalSent,
	},
	TrainingStatusTrainerConfirmed: {
		TrainingStatusPlanning,
		TrainingStatusTrainerOutreach,
	},
	TrainingStatusPlanning: {
		TrainingStatusDelivered,
		TrainingStatusTrainerConfirmed,
	},
	TrainingStatusDelivered: {
		TrainingStatusInvoiced,
		TrainingStatusPlanning,
	},
	TrainingStatusInvoiced: {
		TrainingStatusDelivered,
	},
}

// CanTransition reports whether a training may move from current to next.
// Setting the same status again is always allowed and treated as a no-op.
func CanTransition(current, next TrainingStatus) bool {
	if current == next {
		return true
	}
	for _, allowed := range AllowedStatusTransitions[current] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidTrainingStatus reports whether s is a known lifecycle status.
func ValidTrainingStatus(s TrainingStatus) bool {
	_, ok := AllowedStatusTransitions[s]
	return ok
}

func ValidTrainingType(t TrainingType) bool {
	return t == TrainingTypeOnline || t == TrainingTypeClassroom
}

func ValidTrainingFormat(f TrainingFormat) bool {
	return f == TrainingFormatInhouse || f == TrainingFormatPublic
}

func ValidMailFolder(f MailFolder) bool {
	switch f {
	case MailFolderInbox, MailFolderSent, MailFolderDrafts, MailFolderTrash, MailFolderArchive:
		return true
	}
	return false
}

func ValidUserRole(r UserRole) bool {
	switch r {
	case UserRoleAdmin, UserRoleBackoffice, UserRoleTrainer:
		return true
	}
	return false
}

// IsStaff reports whether the role carries back-office privileges.
func (r UserRole) IsStaff() bool {
	return r == UserRoleAdmin || r == UserRoleBackoffice
}
