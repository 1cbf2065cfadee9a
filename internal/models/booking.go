package models

import "time"

// ProviderDetails is the snapshot of a provider copied into a booking at
// booking or confirmation time. Later edits to the provider document do not
// change past bookings.
type ProviderDetails struct {
	Name               string   `bson:"name" json:"name"`
	Specialty          string   `bson:"specialty" json:"specialty"`
	Address            string   `bson:"address" json:"address"`
	City               string   `bson:"city,omitempty" json:"city,omitempty"`
	State              string   `bson:"state,omitempty" json:"state,omitempty"`
	Pincode            string   `bson:"pincode,omitempty" json:"pincode,omitempty"`
	Phone              string   `bson:"phone" json:"phone"`
	Email              string   `bson:"email" json:"email"`
	Rating             float64  `bson:"rating" json:"rating"`
	WaitTime           string   `bson:"wait_time" json:"wait_time"`
	AcceptedInsurances []string `bson:"accepted_insurances" json:"accepted_insurances"`
	Experience         string   `bson:"experience,omitempty" json:"experience,omitempty"`
	Education          string   `bson:"education,omitempty" json:"education,omitempty"`
}

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
)

type Booking struct {
	ID              string           `bson:"_id,omitempty" json:"_id"`
	UserID          string           `bson:"user_id" json:"user_id"`
	ProviderID      string           `bson:"provider_id" json:"provider_id"`
	AppointmentTime time.Time        `bson:"appointment_time" json:"appointment_time"`
	Status          string           `bson:"status" json:"status"`
	ProviderDetails *ProviderDetails `bson:"provider_details,omitempty" json:"provider_details,omitempty"`

	InsuranceProvider string `bson:"insurance_provider,omitempty" json:"insurance_provider,omitempty"`
	InsurancePlan     string `bson:"insurance_plan,omitempty" json:"insurance_plan,omitempty"`
	MemberID          string `bson:"member_id,omitempty" json:"member_id,omitempty"`

	EstimatedCost     *float64 `bson:"estimated_cost,omitempty" json:"estimated_cost,omitempty"`
	InsuranceCoverage *float64 `bson:"insurance_coverage,omitempty" json:"insurance_coverage,omitempty"`
	OutOfPocketCost   *float64 `bson:"out_of_pocket_cost,omitempty" json:"out_of_pocket_cost,omitempty"`

	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `bson:"updated_at" json:"updated_at"`
	ConfirmedAt   *time.Time `bson:"confirmed_at,omitempty" json:"confirmed_at,omitempty"`
	RescheduledAt *time.Time `bson:"rescheduled_at,omitempty" json:"rescheduled_at,omitempty"`
}

// Snapshot builds the denormalized provider copy stored inside a booking.
func Snapshot(p *Provider) *ProviderDetails {
	return &ProviderDetails{
		Name:               p.Name,
		Specialty:          p.Specialty,
		Address:            p.Address,
		City:               p.City,
		State:              p.State,
		Pincode:            p.Pincode,
		Phone:              p.Phone,
		Email:              p.Email,
		Rating:             p.Rating,
		WaitTime:           p.WaitTime,
		AcceptedInsurances: p.AcceptedInsurances,
		Experience:         p.Experience,
		Education:          p.Education,
	}
}
