package entities

// Donor registration outcomes.
const (
	RegistrationStatusSuccess = "success"
	RegistrationStatusFailed  = "failed"
)

// DonorInput carries the parameters of a donor registration.
type DonorInput struct {
	Name              string   `json:"name"`
	Age               int      `json:"age"`
	WeightKg          float64  `json:"weight_kg"`
	WillingToDonate   bool     `json:"willing_to_donate"`
	MedicalConditions []string `json:"medical_conditions,omitempty"`
	BloodGroup        string   `json:"blood_group"`
	Gender            string   `json:"gender"`
	Phone             string   `json:"phone"`
	Email             string   `json:"email"`
	Address           string   `json:"address"`
	LastDonationDate  string   `json:"last_donation_date,omitempty"`
}

// Eligible reports whether the donor meets all donation criteria:
// at least 18 years old, at least 50 kg, willing to donate, and no
// listed medical conditions.
func (d *DonorInput) Eligible() bool {
	return d.Age >= 18 &&
		d.WeightKg >= 50 &&
		d.WillingToDonate &&
		len(d.MedicalConditions) == 0
}

// DonorRegistration is the outcome of a registration call. DonorID is
// empty when eligibility failed. NextEligibleDate is a YYYY-MM-DD date,
// present only for eligible donors.
type DonorRegistration struct {
	DonorID             string `json:"donor_id"`
	RegistrationStatus  string `json:"registration_status"`
	EligibleForDonation bool   `json:"eligible_for_donation"`
	NextEligibleDate    string `json:"next_eligible_date,omitempty"`
	DonorCardURL        string `json:"donor_card_url,omitempty"`
	Message             string `json:"message,omitempty"`
}
