package blood

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/obiora-dev/school-health-hub/internal/domain/entities"
	"github.com/obiora-dev/school-health-hub/internal/domain/providers"
	apperrors "github.com/obiora-dev/school-health-hub/pkg/errors"
)

// Simulated latencies of the mock data path.
const (
	searchDelay  = 800 * time.Millisecond
	nearbyDelay  = 600 * time.Millisecond
	requestDelay = 1200 * time.Millisecond
	statusDelay  = 500 * time.Millisecond
	donorDelay   = 1000 * time.Millisecond
	campsDelay   = 700 * time.Millisecond
	pingDelay    = 300 * time.Millisecond
)

// pingSuccessRate is the probability that the mock connectivity probe
// succeeds, simulating an occasionally flaky network.
const pingSuccessRate = 0.95

// donationCooldownMonths is the interval before a donor may donate again.
const donationCooldownMonths = 3

// MockAdapter serves every operation from the in-memory fixture catalog
// with simulated latency. The catalog is immutable, so concurrent calls
// need no coordination.
type MockAdapter struct {
	banks     []entities.BloodBank
	camps     []entities.BloodDonationCamp
	delayer   providers.Delayer
	now       func() time.Time
	randFloat func() float64
}

// NewMockAdapter creates a mock provider over the fixture catalog.
func NewMockAdapter(delayer providers.Delayer) *MockAdapter {
	return &MockAdapter{
		banks:     bloodBankFixtures(),
		camps:     campFixtures(),
		delayer:   delayer,
		now:       time.Now,
		randFloat: rand.Float64,
	}
}

// SearchAvailability filters the catalog to banks stocking the requested
// group, optionally within the given radius, sorted ascending by distance.
// Returned banks expose only the requested group's count. Zero matches is
// a valid empty result, not an error.
func (m *MockAdapter) SearchAvailability(ctx context.Context, query providers.BloodAvailabilityQuery) ([]entities.BloodBank, error) {
	m.delayer.Delay(ctx, searchDelay)

	if !entities.IsValidBloodGroup(query.BloodGroup) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown blood group %q", query.BloodGroup))
	}

	results := make([]entities.BloodBank, 0, len(m.banks))
	for _, bank := range m.banks {
		if bank.BloodInventory[query.BloodGroup] <= 0 {
			continue
		}
		if query.RadiusKm > 0 && bank.DistanceKm > query.RadiusKm {
			continue
		}
		results = append(results, bank.WithInventoryFor(query.BloodGroup))
	}

	// Stable: distance ties keep fixture input order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})
	return results, nil
}

// FindNearby filters the catalog by each fixture's precomputed distance.
// Coordinates are accepted but not used to recompute distances.
func (m *MockAdapter) FindNearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]entities.BloodBank, error) {
	m.delayer.Delay(ctx, nearbyDelay)

	results := make([]entities.BloodBank, 0, len(m.banks))
	for _, bank := range m.banks {
		if radiusKm > 0 && bank.DistanceKm > radiusKm {
			continue
		}
		results = append(results, bank.Copy())
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})
	return results, nil
}

// CreateRequest assigns the first bank (in fixture order) whose stock of
// the requested group covers the required units and returns a pending
// request bound to it.
func (m *MockAdapter) CreateRequest(ctx context.Context, input entities.BloodRequestInput) (*entities.BloodRequest, error) {
	m.delayer.Delay(ctx, requestDelay)

	var assigned *entities.BloodBank
	for i := range m.banks {
		if m.banks[i].BloodInventory[input.BloodGroup] >= input.UnitsRequired {
			assigned = &m.banks[i]
			break
		}
	}
	if assigned == nil {
		return nil, providers.ErrInsufficientInventory
	}

	now := m.now()
	return &entities.BloodRequest{
		RequestID:                fmt.Sprintf("REQ-%d", now.UnixMilli()),
		Status:                   entities.RequestStatusPending,
		BloodGroup:               input.BloodGroup,
		UnitsRequired:            input.UnitsRequired,
		Urgency:                  input.Urgency,
		EstimatedFulfillmentTime: estimatedFulfillment(input.Urgency),
		AssignedBloodBank:        assigned.Name,
		ContactPhone:             assigned.PhoneNumber,
		RequesterName:            input.RequesterName,
		RequesterType:            input.RequesterType,
		PatientDetails:           input.PatientDetails,
		DeliveryAddress:          input.DeliveryAddress,
		CreatedAt:                now,
	}, nil
}

// RequestStatus synthesizes a fulfilled record for any id. The mock path
// keeps no request state between calls; each lookup is independent.
func (m *MockAdapter) RequestStatus(ctx context.Context, requestID string) (*entities.BloodRequest, error) {
	m.delayer.Delay(ctx, statusDelay)

	fulfilledAt := m.now()
	return &entities.BloodRequest{
		RequestID:   requestID,
		Status:      entities.RequestStatusFulfilled,
		FulfilledAt: &fulfilledAt,
	}, nil
}

// RegisterDonor evaluates eligibility and, for eligible donors, computes
// the next eligible donation date and a donor card artifact URL.
func (m *MockAdapter) RegisterDonor(ctx context.Context, input entities.DonorInput) (*entities.DonorRegistration, error) {
	m.delayer.Delay(ctx, donorDelay)

	if !input.Eligible() {
		return &entities.DonorRegistration{
			DonorID:             "",
			RegistrationStatus:  entities.RegistrationStatusFailed,
			EligibleForDonation: false,
			Message:             "Donor does not meet eligibility criteria",
		}, nil
	}

	lastDonation := m.now()
	if input.LastDonationDate != "" {
		if parsed, err := time.Parse("2006-01-02", input.LastDonationDate); err == nil {
			lastDonation = parsed
		}
	}

	donorID := fmt.Sprintf("DON-%d", m.now().UnixMilli())
	return &entities.DonorRegistration{
		DonorID:             donorID,
		RegistrationStatus:  entities.RegistrationStatusSuccess,
		EligibleForDonation: true,
		NextEligibleDate:    lastDonation.AddDate(0, donationCooldownMonths, 0).Format("2006-01-02"),
		DonorCardURL:        fmt.Sprintf("https://cards.school-health-hub.example/donors/%s.pdf", donorID),
	}, nil
}

// UpcomingCamps returns the canned camp listings. Filters are accepted
// but not applied to the mock catalog.
func (m *MockAdapter) UpcomingCamps(ctx context.Context, _ entities.CampFilter) ([]entities.BloodDonationCamp, error) {
	m.delayer.Delay(ctx, campsDelay)

	camps := make([]entities.BloodDonationCamp, len(m.camps))
	copy(camps, m.camps)
	return camps, nil
}

// Ping simulates a flaky network: it succeeds with probability 0.95.
func (m *MockAdapter) Ping(ctx context.Context) error {
	m.delayer.Delay(ctx, pingDelay)

	if m.randFloat() < pingSuccessRate {
		return nil
	}
	return apperrors.NewExternalError("network error: unable to reach blood bank service", nil)
}

func estimatedFulfillment(urgency string) string {
	switch urgency {
	case entities.UrgencyCritical:
		return "1 hour"
	case entities.UrgencyUrgent:
		return "2 hours"
	default:
		return "4 hours"
	}
}
