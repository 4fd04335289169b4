package models

type Customer struct {
	BaseModel
	CompanyName  string         `gorm:"not null;index" json:"company_name"`
	Salutation   string         `json:"salutation"`
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	ContactEmail string         `json:"contact_email"`
	ContactPhone string         `json:"contact_phone"`
	VATNumber    string         `json:"vat_number"`
	Street       string         `json:"street"`
	PostalCode   string         `json:"postal_code"`
	City         string         `json:"city"`
	Country      string         `json:"country"`
	Conditions   string         `gorm:"type:text" json:"conditions"`
	Comment      string         `gorm:"type:text" json:"comment"`
	Tags         string         `json:"tags"`
	Notes        string         `gorm:"type:text" json:"notes"`
	Status       CustomerStatus `gorm:"type:varchar(20);default:'active'" json:"status"`

	// Relations
	Brands    []Brand    `gorm:"many2many:customer_brands;" json:"brands,omitempty"`
	Trainings []Training `gorm:"foreignKey:CustomerID" json:"-"`
}
