package email

import (
	"fmt"
	"time"
)

// Plain-text bodies for every notification the system sends. Kept as
// code rather than template files: the set is small and fully static.

func formatDate(t *time.Time) string {
	if t == nil {
		return "to be announced"
	}
	return t.Format("02 Jan 2006")
}

func WelcomeBody(name string) (subject, body string) {
	subject = "Welcome to the training portal"
	body = fmt.Sprintf(`Hello %s,

your account has been created. You can now log in to the training portal.

Best regards
The Backoffice Team
`, name)
	return subject, body
}

func RegistrationReceivedBody(name string) (subject, body string) {
	subject = "We received your trainer registration"
	body = fmt.Sprintf(`Hello %s,

thank you for registering as a trainer. Our team will review your
application and get back to you shortly.

Best regards
The Backoffice Team
`, name)
	return subject, body
}

func RegistrationApprovedBody(name, username, platformEmail string) (subject, body string) {
	subject = "Your trainer registration has been approved"
	body = fmt.Sprintf(`Hello %s,

good news: your registration has been approved. You can log in with the
username %q and the password you chose at registration.
`, name, username)
	if platformEmail != "" {
		body += fmt.Sprintf(`
A platform mailbox has been set up for you: %s
`, platformEmail)
	}
	body += `
Best regards
The Backoffice Team
`
	return subject, body
}

func RegistrationRejectedBody(name, reason string) (subject, body string) {
	subject = "Your trainer registration"
	body = fmt.Sprintf(`Hello %s,

unfortunately we cannot accept your trainer registration at this time.
`, name)
	if reason != "" {
		body += fmt.Sprintf("\nReason: %s\n", reason)
	}
	body += `
Best regards
The Backoffice Team
`
	return subject, body
}

func ApplicationSubmittedBody(name, trainingTitle string) (subject, body string) {
	subject = "Your application was submitted"
	body = fmt.Sprintf(`Hello %s,

your application for the training %q has been submitted. We will let you
know once it has been reviewed.

Best regards
The Backoffice Team
`, name, trainingTitle)
	return subject, body
}

func ApplicationAcceptedBody(name, trainingTitle string, startDate *time.Time) (subject, body string) {
	subject = "Your application was accepted"
	body = fmt.Sprintf(`Hello %s,

congratulations! You have been selected for the training %q
(start: %s). The back office will contact you with the details.

Best regards
The Backoffice Team
`, name, trainingTitle, formatDate(startDate))
	return subject, body
}

func ApplicationRejectedBody(name, trainingTitle string) (subject, body string) {
	subject = "Update on your application"
	body = fmt.Sprintf(`Hello %s,

the training %q has been assigned to another trainer this time. Thank you
for applying, we hope to work with you on a future training.

Best regards
The Backoffice Team
`, name, trainingTitle)
	return subject, body
}

func AdminNewApplicationBody(trainerName, trainingTitle string) (subject, body string) {
	subject = fmt.Sprintf("New trainer application: %s", trainingTitle)
	body = fmt.Sprintf(`%s applied for the training %q.

Please review the application in the back office.
`, trainerName, trainingTitle)
	return subject, body
}

func AdminNewRegistrationBody(name, email string) (subject, body string) {
	subject = "New trainer registration"
	body = fmt.Sprintf(`%s (%s) registered as a trainer.

Please review the registration in the back office.
`, name, email)
	return subject, body
}

func StatusChangedBody(name, trainingTitle, oldStatus, newStatus string) (subject, body string) {
	subject = fmt.Sprintf("Training update: %s", trainingTitle)
	body = fmt.Sprintf(`Hello %s,

the status of the training %q changed from %q to %q.

Best regards
The Backoffice Team
`, name, trainingTitle, oldStatus, newStatus)
	return subject, body
}

func TrainerAssignedBody(name, trainingTitle string, startDate *time.Time) (subject, body string) {
	subject = fmt.Sprintf("You have been assigned: %s", trainingTitle)
	body = fmt.Sprintf(`Hello %s,

you have been assigned to the training %q (start: %s).

Best regards
The Backoffice Team
`, name, trainingTitle, formatDate(startDate))
	return subject, body
}

func TrainingReminderBody(name, trainingTitle, customerName string, startDate *time.Time) (subject, body string) {
	subject = fmt.Sprintf("Reminder: %s starts tomorrow", trainingTitle)
	body = fmt.Sprintf(`Hello %s,

this is a reminder that the training %q for %s starts tomorrow (%s).

Best regards
The Backoffice Team
`, name, trainingTitle, customerName, formatDate(startDate))
	return subject, body
}
