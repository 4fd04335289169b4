package models

type User struct {
	BaseModel
	Username      string   `gorm:"uniqueIndex;not null" json:"username"`
	Email         string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string   `gorm:"not null" json:"-"`
	Role          UserRole `gorm:"type:varchar(20);not null;default:'backoffice_user'" json:"role"`
	IsActive      bool     `gorm:"default:true" json:"is_active"`
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	PlatformEmail *string  `gorm:"uniqueIndex" json:"platform_email"`

	// Relations
	Emails []MailboxEmail `gorm:"foreignKey:OwnerID" json:"-"`
}
