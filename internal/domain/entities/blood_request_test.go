package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from RequestStatus
		to   RequestStatus
		want bool
	}{
		{RequestStatusPending, RequestStatusInProgress, true},
		{RequestStatusPending, RequestStatusCancelled, true},
		{RequestStatusPending, RequestStatusFulfilled, false},
		{RequestStatusInProgress, RequestStatusFulfilled, true},
		{RequestStatusInProgress, RequestStatusCancelled, true},
		{RequestStatusInProgress, RequestStatusPending, false},
		{RequestStatusFulfilled, RequestStatusPending, false},
		{RequestStatusFulfilled, RequestStatusCancelled, false},
		{RequestStatusCancelled, RequestStatusInProgress, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestIsValidBloodGroup(t *testing.T) {
	for _, g := range BloodGroups {
		assert.True(t, IsValidBloodGroup(g))
	}
	assert.False(t, IsValidBloodGroup("Z+"))
	assert.False(t, IsValidBloodGroup(""))
}

func TestBloodBank_WithInventoryFor(t *testing.T) {
	bank := BloodBank{
		Name:           "City Central Blood Bank",
		BloodInventory: map[string]int{"A+": 24, "O-": 7},
	}

	view := bank.WithInventoryFor("A+")

	assert.Equal(t, map[string]int{"A+": 24}, view.BloodInventory)
	assert.Len(t, bank.BloodInventory, 2, "source bank is untouched")
}

func TestDonorInput_Eligible(t *testing.T) {
	base := DonorInput{Age: 25, WeightKg: 60, WillingToDonate: true}
	assert.True(t, base.Eligible())

	underage := base
	underage.Age = 17
	assert.False(t, underage.Eligible())

	light := base
	light.WeightKg = 49.5
	assert.False(t, light.Eligible())

	unwilling := base
	unwilling.WillingToDonate = false
	assert.False(t, unwilling.Eligible())

	conditions := base
	conditions.MedicalConditions = []string{"hypertension"}
	assert.False(t, conditions.Eligible())
}
