package dto

type ApplyRequest struct {
	Message      string   `json:"message"`
	ProposedRate *float64 `json:"proposed_rate" validate:"omitempty,gte=0"`
}

type ReviewApplicationRequest struct {
	AdminNotes string `json:"admin_notes"`
}
