package blood

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obiora-dev/school-health-hub/internal/domain/entities"
	"github.com/obiora-dev/school-health-hub/internal/domain/providers"
)

func newTestMockAdapter() *MockAdapter {
	adapter := NewMockAdapter(providers.NopDelayer{})
	adapter.now = func() time.Time {
		return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	}
	return adapter
}

func TestMockAdapter_SearchAvailability(t *testing.T) {
	adapter := newTestMockAdapter()
	ctx := context.Background()

	t.Run("filters by stock and radius, sorted by distance", func(t *testing.T) {
		banks, err := adapter.SearchAvailability(ctx, providers.BloodAvailabilityQuery{
			BloodGroup: "B-",
			RadiusKm:   10,
		})
		require.NoError(t, err)
		require.Len(t, banks, 3)

		lastDistance := 0.0
		for _, bank := range banks {
			assert.Greater(t, bank.BloodInventory["B-"], 0)
			assert.LessOrEqual(t, bank.DistanceKm, 10.0)
			assert.GreaterOrEqual(t, bank.DistanceKm, lastDistance)
			lastDistance = bank.DistanceKm
		}
	})

	t.Run("exposes only the requested blood group", func(t *testing.T) {
		banks, err := adapter.SearchAvailability(ctx, providers.BloodAvailabilityQuery{BloodGroup: "O+"})
		require.NoError(t, err)
		require.NotEmpty(t, banks)

		for _, bank := range banks {
			assert.Len(t, bank.BloodInventory, 1)
			assert.Contains(t, bank.BloodInventory, "O+")
		}
	})

	t.Run("excludes banks with zero stock", func(t *testing.T) {
		banks, err := adapter.SearchAvailability(ctx, providers.BloodAvailabilityQuery{BloodGroup: "B-"})
		require.NoError(t, err)

		for _, bank := range banks {
			assert.NotEqual(t, "bb-003", bank.ID, "bb-003 has zero B- units")
		}
	})

	t.Run("zero matches is a success with empty data", func(t *testing.T) {
		banks, err := adapter.SearchAvailability(ctx, providers.BloodAvailabilityQuery{
			BloodGroup: "AB-",
			RadiusKm:   1,
		})
		require.NoError(t, err)
		assert.Empty(t, banks)
	})

	t.Run("rejects unknown blood group", func(t *testing.T) {
		_, err := adapter.SearchAvailability(ctx, providers.BloodAvailabilityQuery{BloodGroup: "Z+"})
		assert.Error(t, err)
	})

	t.Run("does not mutate the fixture catalog", func(t *testing.T) {
		banks, err := adapter.SearchAvailability(ctx, providers.BloodAvailabilityQuery{BloodGroup: "A+"})
		require.NoError(t, err)
		banks[0].BloodInventory["A+"] = -99

		again, err := adapter.SearchAvailability(ctx, providers.BloodAvailabilityQuery{BloodGroup: "A+"})
		require.NoError(t, err)
		assert.Equal(t, 24, again[0].BloodInventory["A+"])
	})
}

func TestMockAdapter_FindNearby(t *testing.T) {
	adapter := newTestMockAdapter()
	ctx := context.Background()

	t.Run("filters by radius and sorts by distance", func(t *testing.T) {
		banks, err := adapter.FindNearby(ctx, 12.97, 77.60, 6)
		require.NoError(t, err)
		require.Len(t, banks, 3)

		assert.Equal(t, "bb-001", banks[0].ID)
		assert.Equal(t, "bb-002", banks[1].ID)
		assert.Equal(t, "bb-003", banks[2].ID)
	})

	t.Run("identical queries yield identical ordered results", func(t *testing.T) {
		first, err := adapter.FindNearby(ctx, 12.97, 77.60, 20)
		require.NoError(t, err)
		second, err := adapter.FindNearby(ctx, 12.97, 77.60, 20)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestMockAdapter_CreateRequest(t *testing.T) {
	adapter := newTestMockAdapter()
	ctx := context.Background()

	t.Run("assigns first bank with sufficient units", func(t *testing.T) {
		request, err := adapter.CreateRequest(ctx, entities.BloodRequestInput{
			RequesterName: "Nurse Okafor",
			RequesterType: "school_nurse",
			BloodGroup:    "O+",
			UnitsRequired: 35,
			Urgency:       entities.UrgencyUrgent,
		})
		require.NoError(t, err)

		assert.Equal(t, "District General Hospital Bank", request.AssignedBloodBank)
		assert.Equal(t, entities.RequestStatusPending, request.Status)
		assert.NotEmpty(t, request.RequestID)
		assert.Equal(t, "2 hours", request.EstimatedFulfillmentTime)
		assert.Equal(t, "+91-80-4555-6644", request.ContactPhone)
	})

	t.Run("fails when no bank has sufficient units", func(t *testing.T) {
		_, err := adapter.CreateRequest(ctx, entities.BloodRequestInput{
			BloodGroup:    "O+",
			UnitsRequired: 1000,
			Urgency:       entities.UrgencyNormal,
		})
		assert.True(t, errors.Is(err, providers.ErrInsufficientInventory))
	})

	t.Run("maps urgency to estimated fulfillment time", func(t *testing.T) {
		cases := map[string]string{
			entities.UrgencyCritical: "1 hour",
			entities.UrgencyUrgent:   "2 hours",
			entities.UrgencyNormal:   "4 hours",
			"":                       "4 hours",
		}
		for urgency, want := range cases {
			request, err := adapter.CreateRequest(ctx, entities.BloodRequestInput{
				BloodGroup:    "A+",
				UnitsRequired: 1,
				Urgency:       urgency,
			})
			require.NoError(t, err)
			assert.Equal(t, want, request.EstimatedFulfillmentTime)
		}
	})
}

func TestMockAdapter_RequestStatus(t *testing.T) {
	adapter := newTestMockAdapter()

	// The mock path keeps no request state; every lookup reports fulfilled.
	request, err := adapter.RequestStatus(context.Background(), "REQ-does-not-exist")
	require.NoError(t, err)

	assert.Equal(t, "REQ-does-not-exist", request.RequestID)
	assert.Equal(t, entities.RequestStatusFulfilled, request.Status)
	require.NotNil(t, request.FulfilledAt)
}

func TestMockAdapter_RegisterDonor(t *testing.T) {
	adapter := newTestMockAdapter()
	ctx := context.Background()

	eligible := entities.DonorInput{
		Name:            "Amara Eze",
		Age:             25,
		WeightKg:        60,
		WillingToDonate: true,
		BloodGroup:      "A+",
	}

	t.Run("rejects ineligible donors", func(t *testing.T) {
		cases := map[string]entities.DonorInput{
			"underage":           {Age: 17, WeightKg: 60, WillingToDonate: true},
			"underweight":        {Age: 25, WeightKg: 40, WillingToDonate: true},
			"unwilling":          {Age: 25, WeightKg: 60, WillingToDonate: false},
			"medical conditions": {Age: 25, WeightKg: 60, WillingToDonate: true, MedicalConditions: []string{"anemia"}},
		}
		for name, input := range cases {
			registration, err := adapter.RegisterDonor(ctx, input)
			require.NoError(t, err, name)

			assert.Equal(t, entities.RegistrationStatusFailed, registration.RegistrationStatus, name)
			assert.False(t, registration.EligibleForDonation, name)
			assert.Empty(t, registration.DonorID, name)
			assert.Equal(t, "Donor does not meet eligibility criteria", registration.Message, name)
		}
	})

	t.Run("computes next eligible date from last donation", func(t *testing.T) {
		input := eligible
		input.LastDonationDate = "2025-01-01"

		registration, err := adapter.RegisterDonor(ctx, input)
		require.NoError(t, err)

		assert.Equal(t, entities.RegistrationStatusSuccess, registration.RegistrationStatus)
		assert.True(t, registration.EligibleForDonation)
		assert.Equal(t, "2025-04-01", registration.NextEligibleDate)
		assert.NotEmpty(t, registration.DonorID)
		assert.NotEmpty(t, registration.DonorCardURL)
	})

	t.Run("defaults last donation to today", func(t *testing.T) {
		registration, err := adapter.RegisterDonor(ctx, eligible)
		require.NoError(t, err)

		// Injected now is 2026-09-01; three calendar months later.
		assert.Equal(t, "2026-12-01", registration.NextEligibleDate)
	})
}

func TestMockAdapter_UpcomingCamps(t *testing.T) {
	adapter := newTestMockAdapter()

	// Filters are accepted but not applied to the mock catalog.
	camps, err := adapter.UpcomingCamps(context.Background(), entities.CampFilter{State: "Kerala"})
	require.NoError(t, err)
	assert.Len(t, camps, 3)
}

func TestMockAdapter_Ping(t *testing.T) {
	adapter := newTestMockAdapter()
	rng := rand.New(rand.NewSource(42))
	adapter.randFloat = rng.Float64

	const trials = 2000
	failures := 0
	for i := 0; i < trials; i++ {
		if err := adapter.Ping(context.Background()); err != nil {
			failures++
		}
	}

	rate := float64(trials-failures) / float64(trials)
	assert.InDelta(t, pingSuccessRate, rate, 0.02)
}
