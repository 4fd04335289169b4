package models

import (
	"time"

	"gorm.io/datatypes"
)

// TrainerRegistration is a self-service signup awaiting staff review.
// On approval it is materialized into a User and a Trainer.
type TrainerRegistration struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	FirstName    string   `gorm:"not null" json:"first_name"`
	LastName     string   `gorm:"not null" json:"last_name"`
	Phone        string   `json:"phone"`
	Address      string   `json:"address"`
	VATNumber    string   `json:"vat_number"`
	LinkedInURL  string   `json:"linkedin_url"`
	Website      string   `json:"website"`
	PhotoURL     string   `json:"photo_url"`
	DayRate      *float64 `json:"day_rate"`

	Specializations datatypes.JSON `json:"specializations"`
	Region          string         `json:"region"`
	Bio             string         `gorm:"type:text" json:"bio"`

	Status     RegistrationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ReviewedAt *time.Time         `json:"reviewed_at"`
	ReviewedBy string             `json:"reviewed_by"`
}
