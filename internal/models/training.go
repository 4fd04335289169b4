package models

import "time"

type Training struct {
	BaseModel
	Title           string         `gorm:"not null" json:"title"`
	TrainingType    TrainingType   `gorm:"type:varchar(20);not null" json:"training_type"`
	TrainingFormat  TrainingFormat `gorm:"type:varchar(20);not null" json:"training_format"`
	DurationDays    *float64       `json:"duration_days"`
	Status          TrainingStatus `gorm:"type:varchar(30);not null;default:'lead'" json:"status"`
	StartDate       *time.Time     `json:"start_date"`
	EndDate         *time.Time     `json:"end_date"`
	Timezone        string         `json:"timezone"`
	Location        string         `json:"location"`
	LocationDetails string         `gorm:"type:text" json:"location_details"`
	OnlineLink      string         `json:"online_link"`
	MaxParticipants *int           `json:"max_participants"`
	Language        string         `json:"language"`
	ContactPerson   string         `json:"contact_person"`
	InternalNotes   string         `gorm:"type:text" json:"internal_notes"`
	TrainerNotes    string         `gorm:"type:text" json:"trainer_notes"`

	// Commercials
	DayRate       *float64 `json:"day_rate"`
	PriceExternal *float64 `json:"price_external"`
	PriceInternal *float64 `json:"price_internal"`
	Margin        *float64 `json:"margin"`

	ChecklistTemplate string `json:"checklist_template"`

	BrandID    string  `gorm:"not null;index" json:"brand_id"`
	CustomerID string  `gorm:"not null;index" json:"customer_id"`
	TrainerID  *string `gorm:"index" json:"trainer_id"`

	// Relations
	Brand        *Brand        `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Customer     *Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Trainer      *Trainer      `gorm:"foreignKey:TrainerID" json:"trainer,omitempty"`
	Tasks        []TrainingTask `gorm:"foreignKey:TrainingID" json:"tasks,omitempty"`
	ActivityLogs []ActivityLog  `gorm:"foreignKey:TrainingID" json:"-"`
}

type TrainingTask struct {
	BaseModel
	TrainingID         string     `gorm:"not null;index" json:"training_id"`
	Title              string     `gorm:"not null" json:"title"`
	Description        string     `gorm:"type:text" json:"description"`
	IsRequired         bool       `gorm:"default:false" json:"is_required"`
	DueDate            *time.Time `json:"due_date"`
	Assignee           string     `json:"assignee"`
	Status             TaskStatus `gorm:"type:varchar(10);default:'open'" json:"status"`
	ReminderOffsetDays *int       `json:"reminder_offset_days"`
	CompletedAt        *time.Time `json:"completed_at"`
}

// ActivityLog is an append-only audit trail entry on a training.
type ActivityLog struct {
	BaseModel
	TrainingID string `gorm:"not null;index" json:"training_id"`
	Message    string `gorm:"type:text;not null" json:"message"`
	CreatedBy  string `json:"created_by"`
}
