package blood

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obiora-dev/school-health-hub/internal/domain/entities"
	"github.com/obiora-dev/school-health-hub/internal/domain/providers"
	"github.com/obiora-dev/school-health-hub/pkg/config"
)

// failingProvider counts calls and always fails, standing in for an
// unreachable real backend.
type failingProvider struct {
	calls int
}

var errBackendDown = errors.New("backend down")

func (f *failingProvider) SearchAvailability(context.Context, providers.BloodAvailabilityQuery) ([]entities.BloodBank, error) {
	f.calls++
	return nil, errBackendDown
}

func (f *failingProvider) FindNearby(context.Context, float64, float64, float64) ([]entities.BloodBank, error) {
	f.calls++
	return nil, errBackendDown
}

func (f *failingProvider) CreateRequest(context.Context, entities.BloodRequestInput) (*entities.BloodRequest, error) {
	f.calls++
	return nil, errBackendDown
}

func (f *failingProvider) RequestStatus(context.Context, string) (*entities.BloodRequest, error) {
	f.calls++
	return nil, errBackendDown
}

func (f *failingProvider) RegisterDonor(context.Context, entities.DonorInput) (*entities.DonorRegistration, error) {
	f.calls++
	return nil, errBackendDown
}

func (f *failingProvider) UpcomingCamps(context.Context, entities.CampFilter) ([]entities.BloodDonationCamp, error) {
	f.calls++
	return nil, errBackendDown
}

func (f *failingProvider) Ping(context.Context) error {
	f.calls++
	return errBackendDown
}

func TestNewBloodProvider_MockMode(t *testing.T) {
	t.Run("forced mock", func(t *testing.T) {
		provider := NewBloodProvider(config.BloodAPIConfig{
			BaseURL:   "https://blood.example.org",
			ForceMock: true,
		}, providers.NopDelayer{}, nil)
		assert.IsType(t, &MockAdapter{}, provider)
	})

	t.Run("no backend configured", func(t *testing.T) {
		provider := NewBloodProvider(config.BloodAPIConfig{}, providers.NopDelayer{}, nil)
		assert.IsType(t, &MockAdapter{}, provider)
	})

	t.Run("backend configured", func(t *testing.T) {
		provider := NewBloodProvider(config.BloodAPIConfig{
			BaseURL: "https://blood.example.org",
		}, providers.NopDelayer{}, nil)
		assert.IsType(t, &FallbackProvider{}, provider)
	})
}

func TestFallbackProvider_FallsBackOnce(t *testing.T) {
	primary := &failingProvider{}
	provider := &FallbackProvider{
		primary:  primary,
		fallback: newTestMockAdapter(),
	}
	ctx := context.Background()

	banks, err := provider.SearchAvailability(ctx, providers.BloodAvailabilityQuery{BloodGroup: "O+"})
	require.NoError(t, err)
	assert.NotEmpty(t, banks)
	assert.Equal(t, 1, primary.calls, "exactly one upstream attempt, never retried")

	request, err := provider.CreateRequest(ctx, entities.BloodRequestInput{
		BloodGroup:    "A+",
		UnitsRequired: 2,
		Urgency:       entities.UrgencyCritical,
	})
	require.NoError(t, err)
	assert.Equal(t, "1 hour", request.EstimatedFulfillmentTime)
}

func TestFallbackProvider_MockOnlyOperations(t *testing.T) {
	primary := &failingProvider{}
	provider := &FallbackProvider{
		primary:  primary,
		fallback: newTestMockAdapter(),
	}
	ctx := context.Background()

	registration, err := provider.RegisterDonor(ctx, entities.DonorInput{
		Age: 30, WeightKg: 70, WillingToDonate: true,
	})
	require.NoError(t, err)
	assert.True(t, registration.EligibleForDonation)

	camps, err := provider.UpcomingCamps(ctx, entities.CampFilter{})
	require.NoError(t, err)
	assert.NotEmpty(t, camps)

	status, err := provider.RequestStatus(ctx, "REQ-1")
	require.NoError(t, err)
	assert.Equal(t, entities.RequestStatusFulfilled, status.Status)

	assert.Zero(t, primary.calls, "mock-only operations never reach the backend")
}

func TestFallbackProvider_PingDoesNotFallBack(t *testing.T) {
	primary := &failingProvider{}
	provider := &FallbackProvider{
		primary:  primary,
		fallback: newTestMockAdapter(),
	}

	err := provider.Ping(context.Background())
	assert.Error(t, err, "connectivity probe reports the real backend directly")
	assert.Equal(t, 1, primary.calls)
}
