package entities

// Blood group codes recognised by the service. Every fixture bank carries
// an inventory entry for each of the eight groups.
const (
	BloodGroupAPositive  = "A+"
	BloodGroupANegative  = "A-"
	BloodGroupBPositive  = "B+"
	BloodGroupBNegative  = "B-"
	BloodGroupABPositive = "AB+"
	BloodGroupABNegative = "AB-"
	BloodGroupOPositive  = "O+"
	BloodGroupONegative  = "O-"
)

// BloodGroups lists all recognised blood group codes.
var BloodGroups = []string{
	BloodGroupAPositive, BloodGroupANegative,
	BloodGroupBPositive, BloodGroupBNegative,
	BloodGroupABPositive, BloodGroupABNegative,
	BloodGroupOPositive, BloodGroupONegative,
}

// IsValidBloodGroup reports whether code is one of the eight recognised groups.
func IsValidBloodGroup(code string) bool {
	for _, g := range BloodGroups {
		if g == code {
			return true
		}
	}
	return false
}

// BloodBank represents a blood bank in the catalog. Fixture entries are
// immutable; query results are filtered copies, never the originals.
type BloodBank struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Address        string         `json:"address"`
	PhoneNumber    string         `json:"phone_number"`
	BloodInventory map[string]int `json:"blood_inventory"`
	DistanceKm     float64        `json:"distance_km"`
	OperatingHours string         `json:"operating_hours"`
	Services       []string       `json:"services"`
	Location       Location       `json:"location"`
}

// Location represents geographical coordinates
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// WithInventoryFor returns a copy of the bank whose inventory exposes only
// the requested blood group's count. Unrelated stock levels are never
// leaked into query results.
func (b BloodBank) WithInventoryFor(bloodGroup string) BloodBank {
	view := b
	view.BloodInventory = map[string]int{bloodGroup: b.BloodInventory[bloodGroup]}
	view.Services = append([]string(nil), b.Services...)
	return view
}

// Copy returns a deep copy of the bank, safe to hand to callers.
func (b BloodBank) Copy() BloodBank {
	view := b
	inv := make(map[string]int, len(b.BloodInventory))
	for g, units := range b.BloodInventory {
		inv[g] = units
	}
	view.BloodInventory = inv
	view.Services = append([]string(nil), b.Services...)
	return view
}
