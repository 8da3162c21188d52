package providers

import (
	"context"
	"errors"

	"github.com/obiora-dev/school-health-hub/internal/domain/entities"
)

// ErrInsufficientInventory indicates no blood bank can cover the
// requested number of units for the requested group.
var ErrInsufficientInventory = errors.New("no blood banks have sufficient units available")

// BloodAvailabilityQuery carries availability search filters. A zero
// RadiusKm means no distance filter.
type BloodAvailabilityQuery struct {
	BloodGroup string
	Pincode    string
	RadiusKm   float64
	State      string
	District   string
}

// BloodProvider is the data source behind the blood service: either the
// real upstream API, the in-memory mock catalog, or the real API with a
// one-shot mock fallback.
type BloodProvider interface {
	// SearchAvailability returns banks stocking the requested group,
	// sorted ascending by distance. Each returned bank exposes only the
	// requested group's inventory count.
	SearchAvailability(ctx context.Context, query BloodAvailabilityQuery) ([]entities.BloodBank, error)

	// FindNearby returns banks within radiusKm of the given coordinates,
	// sorted ascending by distance.
	FindNearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]entities.BloodBank, error)

	// CreateRequest validates a blood request against available inventory
	// and assigns a fulfilling bank. Returns ErrInsufficientInventory
	// when no bank can cover the requested units.
	CreateRequest(ctx context.Context, input entities.BloodRequestInput) (*entities.BloodRequest, error)

	// RequestStatus looks up the state of a previously submitted request.
	RequestStatus(ctx context.Context, requestID string) (*entities.BloodRequest, error)

	// RegisterDonor evaluates donor eligibility and registers the donor.
	// Ineligibility is reported in the returned record, not as an error.
	RegisterDonor(ctx context.Context, input entities.DonorInput) (*entities.DonorRegistration, error)

	// UpcomingCamps lists upcoming donation camps.
	UpcomingCamps(ctx context.Context, filter entities.CampFilter) ([]entities.BloodDonationCamp, error)

	// Ping reports whether the backing data source is reachable.
	Ping(ctx context.Context) error
}
