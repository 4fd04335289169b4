package dto

import "github.com/yellowboat/backoffice/internal/models"

type CreateLocationRequest struct {
	Name       string `json:"name" validate:"required"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
	Country    string `json:"country"`

	BillingName       string `json:"billing_name"`
	BillingStreet     string `json:"billing_street"`
	BillingPostalCode string `json:"billing_postal_code"`
	BillingCity       string `json:"billing_city"`
	BillingCountry    string `json:"billing_country"`

	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone"`

	Description       string   `json:"description"`
	MaxParticipants   *int     `json:"max_participants" validate:"omitempty,gt=0"`
	Features          string   `json:"features"`
	WebsiteLink       string   `json:"website_link" validate:"omitempty,url"`
	CateringAvailable string   `json:"catering_available" validate:"omitempty,oneof=yes no external"`
	RentalCost        *float64 `json:"rental_cost" validate:"omitempty,gte=0"`
	RentalCostType    string   `json:"rental_cost_type" validate:"omitempty,oneof=day hour total"`
	Parking           string   `json:"parking"`
	Directions        string   `json:"directions"`
	ParticipantInfo   string   `json:"participant_info"`
}

type UpdateLocationRequest struct {
	Name       *string `json:"name"`
	Street     *string `json:"street"`
	PostalCode *string `json:"postal_code"`
	City       *string `json:"city"`
	Country    *string `json:"country"`

	BillingName       *string `json:"billing_name"`
	BillingStreet     *string `json:"billing_street"`
	BillingPostalCode *string `json:"billing_postal_code"`
	BillingCity       *string `json:"billing_city"`
	BillingCountry    *string `json:"billing_country"`

	ContactName  *string `json:"contact_name"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone"`

	Description       *string  `json:"description"`
	MaxParticipants   *int     `json:"max_participants" validate:"omitempty,gt=0"`
	Features          *string  `json:"features"`
	WebsiteLink       *string  `json:"website_link" validate:"omitempty,url"`
	CateringAvailable *string  `json:"catering_available" validate:"omitempty,oneof=yes no external"`
	RentalCost        *float64 `json:"rental_cost" validate:"omitempty,gte=0"`
	RentalCostType    *string  `json:"rental_cost_type" validate:"omitempty,oneof=day hour total"`
	Parking           *string  `json:"parking"`
	Directions        *string  `json:"directions"`
	ParticipantInfo   *string  `json:"participant_info"`
}

// LocationPublicView is the trainer-facing shape: rental cost and the
// billing address block are withheld.
type LocationPublicView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Street          string `json:"street"`
	PostalCode      string `json:"postal_code"`
	City            string `json:"city"`
	Country         string `json:"country"`
	ContactName     string `json:"contact_name"`
	ContactEmail    string `json:"contact_email"`
	ContactPhone    string `json:"contact_phone"`
	Description     string `json:"description"`
	MaxParticipants *int   `json:"max_participants"`
	Features        string `json:"features"`
	WebsiteLink     string `json:"website_link"`
	Parking         string `json:"parking"`
	Directions      string `json:"directions"`
	ParticipantInfo string `json:"participant_info"`
}

func NewLocationPublicView(l *models.Location) LocationPublicView {
	return LocationPublicView{
		ID:              l.ID,
		Name:            l.Name,
		Street:          l.Street,
		PostalCode:      l.PostalCode,
		City:            l.City,
		Country:         l.Country,
		ContactName:     l.ContactName,
		ContactEmail:    l.ContactEmail,
		ContactPhone:    l.ContactPhone,
		Description:     l.Description,
		MaxParticipants: l.MaxParticipants,
		Features:        l.Features,
		WebsiteLink:     l.WebsiteLink,
		Parking:         l.Parking,
		Directions:      l.Directions,
		ParticipantInfo: l.ParticipantInfo,
	}
}
