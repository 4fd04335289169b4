package dto

type CreateBrandRequest struct {
	Name               string `json:"name" validate:"required"`
	Slug               string `json:"slug" validate:"required,min=2,max=50"`
	Description        string `json:"description"`
	DefaultSenderName  string `json:"default_sender_name"`
	DefaultSenderEmail string `json:"default_sender_email" validate:"omitempty,email"`
	DefaultTimezone    string `json:"default_timezone"`
	DefaultLanguage    string `json:"default_language"`
	Color              string `json:"color"`
}

type UpdateBrandRequest struct {
	Name               *string `json:"name"`
	Slug               *string `json:"slug" validate:"omitempty,min=2,max=50"`
	Description        *string `json:"description"`
	DefaultSenderName  *string `json:"default_sender_name"`
	DefaultSenderEmail *string `json:"default_sender_email" validate:"omitempty,email"`
	DefaultTimezone    *string `json:"default_timezone"`
	DefaultLanguage    *string `json:"default_language"`
	Color              *string `json:"color"`
}
