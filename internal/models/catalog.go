package models

// TrainingCatalogEntry is a reusable training blueprint staff can
// instantiate into concrete trainings.
type TrainingCatalogEntry struct {
	BaseModel
	Title             string         `gorm:"not null" json:"title"`
	ShortDescription  string         `gorm:"type:text" json:"short_description"`
	DurationDays      *float64       `json:"duration_days"`
	TrainingType      TrainingType   `gorm:"type:varchar(20)" json:"training_type"`
	DefaultFormat     TrainingFormat `gorm:"type:varchar(20)" json:"default_format"`
	DefaultLanguage   string         `json:"default_language"`
	ChecklistTemplate string         `json:"checklist_template"`
}
