package dto

type RegisterTrainerRequest struct {
	Email           string   `json:"email" validate:"required,email"`
	Password        string   `json:"password" validate:"required,min=8"`
	FirstName       string   `json:"first_name" validate:"required"`
	LastName        string   `json:"last_name" validate:"required"`
	Phone           string   `json:"phone"`
	Address         string   `json:"address"`
	VATNumber       string   `json:"vat_number"`
	LinkedInURL     string   `json:"linkedin_url" validate:"omitempty,url"`
	Website         string   `json:"website" validate:"omitempty,url"`
	PhotoURL        string   `json:"photo_url" validate:"omitempty,url"`
	DayRate         *float64 `json:"day_rate" validate:"omitempty,gte=0"`
	Specializations []string `json:"specializations"`
	Region          string   `json:"region"`
	Bio             string   `json:"bio"`
}

type RejectRegistrationRequest struct {
	Reason string `json:"reason"`
}
