package models

type Brand struct {
	BaseModel
	Name               string `gorm:"not null" json:"name"`
	Slug               string `gorm:"uniqueIndex;not null" json:"slug"`
	Description        string `gorm:"type:text" json:"description"`
	DefaultSenderName  string `json:"default_sender_name"`
	DefaultSenderEmail string `json:"default_sender_email"`
	DefaultTimezone    string `gorm:"default:'Europe/Berlin'" json:"default_timezone"`
	DefaultLanguage    string `gorm:"default:'en'" json:"default_language"`
	Color              string `json:"color"`
}
