package models

type TrainerApplication struct {
	BaseModel
	TrainingID   string            `gorm:"not null;index:idx_application_training_trainer,unique" json:"training_id"`
	TrainerID    string            `gorm:"not null;index:idx_application_training_trainer,unique" json:"trainer_id"`
	Status       ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Message      string            `gorm:"type:text" json:"message"`
	ProposedRate *float64          `json:"proposed_rate"`
	AdminNotes   string            `gorm:"type:text" json:"admin_notes"`

	// Relations
	Training *Training `gorm:"foreignKey:TrainingID" json:"training,omitempty"`
	Trainer  *Trainer  `gorm:"foreignKey:TrainerID" json:"trainer,omitempty"`
}
