package models

import (
	"time"

	"gorm.io/datatypes"
)

// MailboxEmail is one email in a user's platform mailbox.
// MessageID/InReplyTo/ThreadID follow RFC 5322 threading.
type MailboxEmail struct {
	BaseModel
	OwnerID string `gorm:"not null;index" json:"owner_id"`

	MessageID string `gorm:"uniqueIndex;not null" json:"message_id"`
	InReplyTo string `gorm:"index" json:"in_reply_to"`
	ThreadID  string `gorm:"index" json:"thread_id"`

	FromAddress string         `gorm:"not null" json:"from_address"`
	FromName    string         `json:"from_name"`
	To          datatypes.JSON `json:"to"`
	Cc          datatypes.JSON `json:"cc"`
	Bcc         datatypes.JSON `json:"bcc"`

	Subject  string     `json:"subject"`
	BodyText string     `gorm:"type:text" json:"body_text"`
	BodyHTML string     `gorm:"type:text" json:"body_html"`
	Folder   MailFolder `gorm:"type:varchar(10);not null;default:'inbox';index" json:"folder"`

	IsRead    bool   `gorm:"default:false" json:"is_read"`
	IsStarred bool   `gorm:"default:false" json:"is_starred"`
	IsDraft   bool   `gorm:"default:false" json:"is_draft"`
	Direction string `gorm:"type:varchar(10)" json:"direction"` // inbound|outbound

	SentAt     *time.Time `json:"sent_at"`
	ReceivedAt *time.Time `json:"received_at"`

	// Relations
	Attachments []EmailAttachment `gorm:"foreignKey:EmailID" json:"attachments,omitempty"`
}

type EmailAttachment struct {
	BaseModel
	EmailID     string `gorm:"not null;index" json:"email_id"`
	Filename    string `gorm:"not null" json:"filename"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	StoragePath string `json:"-"`
}
