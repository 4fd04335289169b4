package models

import "time"

// Message is an internal note between users. A nil RecipientID means the
// message is addressed to all staff (error reports, contact requests).
type Message struct {
	BaseModel
	SenderID    string  `gorm:"not null;index" json:"sender_id"`
	RecipientID *string `gorm:"index" json:"recipient_id"`
	ParentID    *string `gorm:"index" json:"parent_id"`

	MessageType  MessageType   `gorm:"type:varchar(30);not null;default:'message'" json:"message_type"`
	Subject      string        `gorm:"not null" json:"subject"`
	Content      string        `gorm:"type:text;not null" json:"content"`
	PageURL      string        `json:"page_url"`
	ErrorDetails string        `gorm:"type:text" json:"error_details"`
	Status       MessageStatus `gorm:"type:varchar(20);default:'open'" json:"status"`

	IsRead bool       `gorm:"default:false" json:"is_read"`
	ReadAt *time.Time `json:"read_at"`

	// Relations
	Sender    *User     `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Recipient *User     `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
	Replies   []Message `gorm:"foreignKey:ParentID" json:"replies,omitempty"`
}
