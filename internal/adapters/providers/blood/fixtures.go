package blood

import "github.com/obiora-dev/school-health-hub/internal/domain/entities"

// bloodBankFixtures returns the fixed blood bank catalog used by the mock
// data path. Entries are ordered by fixture input order; distance ties in
// query results preserve this ordering. Every bank carries a count for
// all eight blood groups.
func bloodBankFixtures() []entities.BloodBank {
	return []entities.BloodBank{
		{
			ID:          "bb-001",
			Name:        "City Central Blood Bank",
			Address:     "12 MG Road, Shivajinagar, Bengaluru 560001",
			PhoneNumber: "+91-80-4111-2200",
			BloodInventory: map[string]int{
				"A+": 24, "A-": 6, "B+": 18, "B-": 4,
				"AB+": 9, "AB-": 2, "O+": 32, "O-": 7,
			},
			DistanceKm:     2.4,
			OperatingHours: "24 hours",
			Services:       []string{"whole_blood", "platelets", "plasma", "component_separation"},
			Location:       entities.Location{Latitude: 12.9762, Longitude: 77.6033},
		},
		{
			ID:          "bb-002",
			Name:        "Red Cross District Centre",
			Address:     "45 Residency Road, Bengaluru 560025",
			PhoneNumber: "+91-80-4222-3311",
			BloodInventory: map[string]int{
				"A+": 15, "A-": 3, "B+": 21, "B-": 5,
				"AB+": 6, "AB-": 1, "O+": 19, "O-": 4,
			},
			DistanceKm:     3.8,
			OperatingHours: "08:00 - 20:00",
			Services:       []string{"whole_blood", "plasma", "donor_camps"},
			Location:       entities.Location{Latitude: 12.9667, Longitude: 77.6070},
		},
		{
			ID:          "bb-003",
			Name:        "St. Mary's Hospital Blood Bank",
			Address:     "8 Hospital Road, Frazer Town, Bengaluru 560005",
			PhoneNumber: "+91-80-4333-4422",
			BloodInventory: map[string]int{
				"A+": 11, "A-": 2, "B+": 9, "B-": 0,
				"AB+": 4, "AB-": 3, "O+": 14, "O-": 2,
			},
			DistanceKm:     5.1,
			OperatingHours: "24 hours",
			Services:       []string{"whole_blood", "platelets", "apheresis"},
			Location:       entities.Location{Latitude: 12.9982, Longitude: 77.6126},
		},
		{
			ID:          "bb-004",
			Name:        "Lions Community Blood Centre",
			Address:     "102 Outer Ring Road, Marathahalli, Bengaluru 560037",
			PhoneNumber: "+91-80-4444-5533",
			BloodInventory: map[string]int{
				"A+": 7, "A-": 0, "B+": 12, "B-": 2,
				"AB+": 1, "AB-": 0, "O+": 22, "O-": 5,
			},
			DistanceKm:     9.6,
			OperatingHours: "09:00 - 18:00",
			Services:       []string{"whole_blood", "donor_camps"},
			Location:       entities.Location{Latitude: 12.9569, Longitude: 77.7011},
		},
		{
			ID:          "bb-005",
			Name:        "District General Hospital Bank",
			Address:     "3 Station Road, Yeshwanthpur, Bengaluru 560022",
			PhoneNumber: "+91-80-4555-6644",
			BloodInventory: map[string]int{
				"A+": 30, "A-": 8, "B+": 25, "B-": 6,
				"AB+": 12, "AB-": 4, "O+": 40, "O-": 10,
			},
			DistanceKm:     12.3,
			OperatingHours: "24 hours",
			Services:       []string{"whole_blood", "platelets", "plasma", "apheresis", "component_separation"},
			Location:       entities.Location{Latitude: 13.0220, Longitude: 77.5381},
		},
		{
			ID:          "bb-006",
			Name:        "Rotary Suburban Blood Bank",
			Address:     "77 Kanakapura Road, Bengaluru 560062",
			PhoneNumber: "+91-80-4666-7755",
			BloodInventory: map[string]int{
				"A+": 5, "A-": 1, "B+": 6, "B-": 1,
				"AB+": 2, "AB-": 1, "O+": 8, "O-": 0,
			},
			DistanceKm:     16.8,
			OperatingHours: "10:00 - 17:00",
			Services:       []string{"whole_blood"},
			Location:       entities.Location{Latitude: 12.8893, Longitude: 77.5519},
		},
	}
}

// campFixtures returns the canned upcoming donation camp listings.
func campFixtures() []entities.BloodDonationCamp {
	return []entities.BloodDonationCamp{
		{
			ID:              "camp-001",
			Name:            "University Mega Donation Drive",
			Organizer:       "Red Cross Youth Wing",
			Date:            "2026-09-12",
			Time:            "09:00 - 16:00",
			Location:        "Central University Auditorium",
			State:           "Karnataka",
			District:        "Bengaluru Urban",
			ContactPhone:    "+91-80-4777-8866",
			RegistrationURL: "https://camps.school-health-hub.example/register/camp-001",
		},
		{
			ID:              "camp-002",
			Name:            "Tech Park Blood Donation Camp",
			Organizer:       "Lions Club",
			Date:            "2026-09-20",
			Time:            "10:00 - 15:00",
			Location:        "Innovate Tech Park, Tower B Plaza",
			State:           "Karnataka",
			District:        "Bengaluru Urban",
			ContactPhone:    "+91-80-4888-9977",
			RegistrationURL: "https://camps.school-health-hub.example/register/camp-002",
		},
		{
			ID:              "camp-003",
			Name:            "Community Health Mela",
			Organizer:       "District Health Office",
			Date:            "2026-10-02",
			Time:            "08:00 - 14:00",
			Location:        "Town Hall Grounds",
			State:           "Karnataka",
			District:        "Mysuru",
			ContactPhone:    "+91-82-1233-4455",
			RegistrationURL: "https://camps.school-health-hub.example/register/camp-003",
		},
	}
}
