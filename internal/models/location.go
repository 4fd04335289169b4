package models

type Location struct {
	BaseModel
	Name       string `gorm:"not null" json:"name"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
	Country    string `json:"country"`

	// Billing address, withheld from trainer-facing responses.
	BillingName       string `json:"billing_name"`
	BillingStreet     string `json:"billing_street"`
	BillingPostalCode string `json:"billing_postal_code"`
	BillingCity       string `json:"billing_city"`
	BillingCountry    string `json:"billing_country"`

	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`

	Description       string   `gorm:"type:text" json:"description"`
	MaxParticipants   *int     `json:"max_participants"`
	Features          string   `gorm:"type:text" json:"features"`
	WebsiteLink       string   `json:"website_link"`
	CateringAvailable string   `gorm:"type:varchar(10)" json:"catering_available"` // yes|no|external
	RentalCost        *float64 `json:"rental_cost"`
	RentalCostType    string   `gorm:"type:varchar(10)" json:"rental_cost_type"` // day|hour|total
	Parking           string   `gorm:"type:text" json:"parking"`
	Directions        string   `gorm:"type:text" json:"directions"`
	ParticipantInfo   string   `gorm:"type:text" json:"participant_info"`
}
