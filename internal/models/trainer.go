package models

import "gorm.io/datatypes"

type Trainer struct {
	BaseModel
	FirstName       string         `gorm:"not null" json:"first_name"`
	LastName        string         `gorm:"not null" json:"last_name"`
	Email           string         `gorm:"index;not null" json:"email"`
	Phone           string         `json:"phone"`
	Address         string         `json:"address"`
	VATNumber       string         `json:"vat_number"`
	LinkedInURL     string         `json:"linkedin_url"`
	Website         string         `json:"website"`
	PhotoPath       string         `json:"photo_path"`
	DefaultDayRate  *float64       `json:"default_day_rate"`
	Specializations datatypes.JSON `json:"specializations"`
	Tags            string         `json:"tags"`
	Region          string         `json:"region"`
	Bio             string         `gorm:"type:text" json:"bio"`
	Notes           string         `gorm:"type:text" json:"notes"`

	// Portal account link. Nil until a trainer-role user with a matching
	// email logs in or a registration is approved.
	UserID *string `gorm:"uniqueIndex" json:"user_id"`

	// Relations
	Brands       []Brand              `gorm:"many2many:trainer_brands;" json:"brands,omitempty"`
	Trainings    []Training           `gorm:"foreignKey:TrainerID" json:"-"`
	Applications []TrainerApplication `gorm:"foreignKey:TrainerID" json:"-"`
}

// FullName joins the trainer's first and last name for display and emails.
func (t *Trainer) FullName() string {
	if t.FirstName == "" {
		return t.LastName
	}
	return t.FirstName + " " + t.LastName
}
