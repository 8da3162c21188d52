package entities

// BloodDonationCamp is a read-only catalog entry for an upcoming camp.
type BloodDonationCamp struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Organizer       string `json:"organizer"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Location        string `json:"location"`
	State           string `json:"state"`
	District        string `json:"district"`
	ContactPhone    string `json:"contact_phone"`
	RegistrationURL string `json:"registration_url"`
}

// CampFilter carries camp listing filters. The mock catalog accepts but
// does not apply them; see the camp service.
type CampFilter struct {
	State     string
	District  string
	StartDate string
	EndDate   string
}
