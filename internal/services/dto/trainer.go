package dto

type CreateTrainerRequest struct {
	FirstName       string   `json:"first_name" validate:"required"`
	LastName        string   `json:"last_name" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone"`
	Address         string   `json:"address"`
	VATNumber       string   `json:"vat_number"`
	LinkedInURL     string   `json:"linkedin_url" validate:"omitempty,url"`
	Website         string   `json:"website" validate:"omitempty,url"`
	DefaultDayRate  *float64 `json:"default_day_rate" validate:"omitempty,gte=0"`
	Specializations []string `json:"specializations"`
	Tags            string   `json:"tags"`
	Region          string   `json:"region"`
	Bio             string   `json:"bio"`
	Notes           string   `json:"notes"`
	BrandIDs        []string `json:"brand_ids"`
}

type UpdateTrainerRequest struct {
	FirstName       *string  `json:"first_name"`
	LastName        *string  `json:"last_name"`
	Email           *string  `json:"email" validate:"omitempty,email"`
	Phone           *string  `json:"phone"`
	Address         *string  `json:"address"`
	VATNumber       *string  `json:"vat_number"`
	LinkedInURL     *string  `json:"linkedin_url" validate:"omitempty,url"`
	Website         *string  `json:"website" validate:"omitempty,url"`
	DefaultDayRate  *float64 `json:"default_day_rate" validate:"omitempty,gte=0"`
	Specializations []string `json:"specializations"`
	Tags            *string  `json:"tags"`
	Region          *string  `json:"region"`
	Bio             *string  `json:"bio"`
	Notes           *string  `json:"notes"`
	BrandIDs        []string `json:"brand_ids"`
}

// UpdateTrainerProfileRequest is the trainer-portal subset: trainers may
// edit their own contact data but not staff notes or brand links.
type UpdateTrainerProfileRequest struct {
	FirstName       *string  `json:"first_name"`
	LastName        *string  `json:"last_name"`
	Phone           *string  `json:"phone"`
	Address         *string  `json:"address"`
	VATNumber       *string  `json:"vat_number"`
	LinkedInURL     *string  `json:"linkedin_url" validate:"omitempty,url"`
	Website         *string  `json:"website" validate:"omitempty,url"`
	DefaultDayRate  *float64 `json:"default_day_rate" validate:"omitempty,gte=0"`
	Specializations []string `json:"specializations"`
	Region          *string  `json:"region"`
	Bio             *string  `json:"bio"`
}
