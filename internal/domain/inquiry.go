package domain

import "time"

// BespokeConcierge is the booking option offered alongside the catalog services.
const BespokeConcierge = "Bespoke Concierge"

// PartnershipTypes lists the agency profiles accepted by the partnership program.
var PartnershipTypes = []string{
	"Luxury DMC",
	"Wedding Planner",
	"Corporate Agency",
	"Luxury Hotel",
	"Golf Tour Operator",
	"Incentive House",
}

// BookingRequest is a journey request sent from the booking form.
type BookingRequest struct {
	ID            string    `json:"id"`
	FullName      string    `json:"full_name" validate:"required,max=200"`
	Email         string    `json:"email" validate:"required,email,max=320"`
	ServiceType   string    `json:"service_type" validate:"required,service_type"`
	RequestedDate string    `json:"requested_date,omitempty" validate:"max=200"`
	Notes         string    `json:"notes,omitempty" validate:"max=4000"`
	CreatedAt     time.Time `json:"created_at"`
}

// PartnershipApplication is an agency application sent from the partners page.
type PartnershipApplication struct {
	ID                  string    `json:"id"`
	AgencyName          string    `json:"agency_name" validate:"required,max=200"`
	LegalRepresentative string    `json:"legal_representative" validate:"required,max=200"`
	BusinessEmail       string    `json:"business_email" validate:"required,email,max=320"`
	PartnershipType     string    `json:"partnership_type" validate:"required,partnership_type"`
	Portfolio           string    `json:"portfolio,omitempty" validate:"max=4000"`
	CreatedAt           time.Time `json:"created_at"`
}

// Acknowledgement is returned to the guest once an inquiry has been recorded.
type Acknowledgement struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
