package dto

import "time"

type CreateTrainingRequest struct {
	Title             string     `json:"title" validate:"required"`
	TrainingType      string     `json:"training_type" validate:"required"`
	TrainingFormat    string     `json:"training_format" validate:"required"`
	DurationDays      *float64   `json:"duration_days" validate:"omitempty,gt=0"`
	BrandID           string     `json:"brand_id" validate:"required"`
	CustomerID        string     `json:"customer_id" validate:"required"`
	TrainerID         *string    `json:"trainer_id"`
	Status            string     `json:"status"`
	StartDate         *time.Time `json:"start_date"`
	EndDate           *time.Time `json:"end_date"`
	Timezone          string     `json:"timezone"`
	Location          string     `json:"location"`
	LocationDetails   string     `json:"location_details"`
	OnlineLink        string     `json:"online_link"`
	MaxParticipants   *int       `json:"max_participants" validate:"omitempty,gt=0"`
	Language          string     `json:"language"`
	ContactPerson     string     `json:"contact_person"`
	InternalNotes     string     `json:"internal_notes"`
	TrainerNotes      string     `json:"trainer_notes"`
	DayRate           *float64   `json:"day_rate" validate:"omitempty,gte=0"`
	PriceExternal     *float64   `json:"price_external" validate:"omitempty,gte=0"`
	PriceInternal     *float64   `json:"price_internal" validate:"omitempty,gte=0"`
	ChecklistTemplate string     `json:"checklist_template"`

	// GenerateChecklist requests the default task list for the training
	// type. Ignored when Tasks are supplied explicitly.
	GenerateChecklist bool                `json:"generate_checklist"`
	Tasks             []CreateTaskRequest `json:"tasks"`
}

type UpdateTrainingRequest struct {
	Title             *string    `json:"title"`
	TrainingType      *string    `json:"training_type"`
	TrainingFormat    *string    `json:"training_format"`
	DurationDays      *float64   `json:"duration_days" validate:"omitempty,gt=0"`
	BrandID           *string    `json:"brand_id"`
	CustomerID        *string    `json:"customer_id"`
	TrainerID         *string    `json:"trainer_id"`
	StartDate         *time.Time `json:"start_date"`
	EndDate           *time.Time `json:"end_date"`
	Timezone          *string    `json:"timezone"`
	Location          *string    `json:"location"`
	LocationDetails   *string    `json:"location_details"`
	OnlineLink        *string    `json:"online_link"`
	MaxParticipants   *int       `json:"max_participants" validate:"omitempty,gt=0"`
	Language          *string    `json:"language"`
	ContactPerson     *string    `json:"contact_person"`
	InternalNotes     *string    `json:"internal_notes"`
	TrainerNotes      *string    `json:"trainer_notes"`
	DayRate           *float64   `json:"day_rate" validate:"omitempty,gte=0"`
	PriceExternal     *float64   `json:"price_external" validate:"omitempty,gte=0"`
	PriceInternal     *float64   `json:"price_internal" validate:"omitempty,gte=0"`
	ChecklistTemplate *string    `json:"checklist_template"`

	GenerateChecklist bool `json:"generate_checklist"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CreateTaskRequest struct {
	TrainingID         string     `json:"training_id"`
	Title              string     `json:"title" validate:"required"`
	Description        string     `json:"description"`
	IsRequired         bool       `json:"is_required"`
	DueDate            *time.Time `json:"due_date"`
	Assignee           string     `json:"assignee"`
	ReminderOffsetDays *int       `json:"reminder_offset_days"`
}

type UpdateTaskRequest struct {
	Title              *string    `json:"title"`
	Description        *string    `json:"description"`
	IsRequired         *bool      `json:"is_required"`
	DueDate            *time.Time `json:"due_date"`
	Assignee           *string    `json:"assignee"`
	Status             *string    `json:"status" validate:"omitempty,oneof=open done"`
	ReminderOffsetDays *int       `json:"reminder_offset_days"`
}

type AppendActivityLogRequest struct {
	Message string `json:"message" validate:"required"`
}
