package dto

type SendEmailRequest struct {
	To       []string `json:"to" validate:"required_if=SaveAsDraft false,dive,email"`
	Cc       []string `json:"cc" validate:"omitempty,dive,email"`
	Bcc      []string `json:"bcc" validate:"omitempty,dive,email"`
	Subject  string   `json:"subject"`
	BodyText string   `json:"body_text"`
	BodyHTML string   `json:"body_html"`

	// InReplyTo references the Message-ID being answered; threading is
	// derived from it.
	InReplyTo string `json:"in_reply_to"`

	// SaveAsDraft stores the email in drafts instead of sending.
	SaveAsDraft bool `json:"save_as_draft"`

	// DraftID updates an existing draft in place when set.
	DraftID string `json:"draft_id"`
}

type UpdateEmailRequest struct {
	To       []string `json:"to" validate:"omitempty,dive,email"`
	Cc       []string `json:"cc" validate:"omitempty,dive,email"`
	Bcc      []string `json:"bcc" validate:"omitempty,dive,email"`
	Subject  *string  `json:"subject"`
	BodyText *string  `json:"body_text"`
	BodyHTML *string  `json:"body_html"`
}

type MoveEmailRequest struct {
	Folder string `json:"folder" validate:"required,oneof=inbox sent drafts trash archive"`
}
