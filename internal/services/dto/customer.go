package dto

type CreateCustomerRequest struct {
	CompanyName  string   `json:"company_name" validate:"required"`
	Salutation   string   `json:"salutation"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	ContactEmail string   `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string   `json:"contact_phone"`
	VATNumber    string   `json:"vat_number"`
	Street       string   `json:"street"`
	PostalCode   string   `json:"postal_code"`
	City         string   `json:"city"`
	Country      string   `json:"country"`
	Conditions   string   `json:"conditions"`
	Comment      string   `json:"comment"`
	Tags         string   `json:"tags"`
	Notes        string   `json:"notes"`
	BrandIDs     []string `json:"brand_ids"`
}

type UpdateCustomerRequest struct {
	CompanyName  *string  `json:"company_name"`
	Salutation   *string  `json:"salutation"`
	FirstName    *string  `json:"first_name"`
	LastName     *string  `json:"last_name"`
	ContactEmail *string  `json:"contact_email" validate:"omitempty,email"`
	ContactPhone *string  `json:"contact_phone"`
	VATNumber    *string  `json:"vat_number"`
	Street       *string  `json:"street"`
	PostalCode   *string  `json:"postal_code"`
	City         *string  `json:"city"`
	Country      *string  `json:"country"`
	Conditions   *string  `json:"conditions"`
	Comment      *string  `json:"comment"`
	Tags         *string  `json:"tags"`
	Notes        *string  `json:"notes"`
	Status       *string  `json:"status" validate:"omitempty,oneof=active inactive"`
	BrandIDs     []string `json:"brand_ids"`
}
