package dto

type CreateMessageRequest struct {
	// RecipientID left empty addresses the message to all staff.
	RecipientID  *string `json:"recipient_id"`
	ParentID     *string `json:"parent_id"`
	MessageType  string  `json:"message_type" validate:"omitempty,oneof=message error_report trainer_application"`
	Subject      string  `json:"subject" validate:"required"`
	Content      string  `json:"content" validate:"required"`
	PageURL      string  `json:"page_url"`
	ErrorDetails string  `json:"error_details"`
}

type UpdateMessageRequest struct {
	Status *string `json:"status" validate:"omitempty,oneof=open solved not_solvable"`
	IsRead *bool   `json:"is_read"`
}
