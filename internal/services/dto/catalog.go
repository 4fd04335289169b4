package dto

type CreateCatalogEntryRequest struct {
	Title             string   `json:"title" validate:"required"`
	ShortDescription  string   `json:"short_description"`
	DurationDays      *float64 `json:"duration_days" validate:"omitempty,gt=0"`
	TrainingType      string   `json:"training_type" validate:"omitempty,oneof=online classroom"`
	DefaultFormat     string   `json:"default_format" validate:"omitempty,oneof=inhouse public"`
	DefaultLanguage   string   `json:"default_language"`
	ChecklistTemplate string   `json:"checklist_template"`
}

type UpdateCatalogEntryRequest struct {
	Title             *string  `json:"title"`
	ShortDescription  *string  `json:"short_description"`
	DurationDays      *float64 `json:"duration_days" validate:"omitempty,gt=0"`
	TrainingType      *string  `json:"training_type" validate:"omitempty,oneof=online classroom"`
	DefaultFormat     *string  `json:"default_format" validate:"omitempty,oneof=inhouse public"`
	DefaultLanguage   *string  `json:"default_language"`
	ChecklistTemplate *string  `json:"checklist_template"`
}
