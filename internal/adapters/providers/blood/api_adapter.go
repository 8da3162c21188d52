package blood

import (
	"context"

	"github.com/obiora-dev/school-health-hub/internal/domain/entities"
	"github.com/obiora-dev/school-health-hub/internal/domain/providers"
	"github.com/obiora-dev/school-health-hub/internal/infrastructure/clients/bloodapi"
	apperrors "github.com/obiora-dev/school-health-hub/pkg/errors"
)

// APIAdapter serves queries from the real blood-bank backend. Donor
// registration, request status, and camp listings have no upstream
// endpoints; the fallback provider never routes them here.
type APIAdapter struct {
	client bloodapi.Client
}

// NewAPIAdapter creates a provider backed by the real API client.
func NewAPIAdapter(client bloodapi.Client) *APIAdapter {
	return &APIAdapter{client: client}
}

func (a *APIAdapter) SearchAvailability(ctx context.Context, query providers.BloodAvailabilityQuery) ([]entities.BloodBank, error) {
	banks, err := a.client.SearchAvailability(ctx, bloodapi.AvailabilityRequest{
		BloodGroup: query.BloodGroup,
		Pincode:    query.Pincode,
		RadiusKm:   query.RadiusKm,
		State:      query.State,
		District:   query.District,
	})
	if err != nil {
		return nil, apperrors.NewExternalError("blood availability lookup failed", err)
	}
	return banks, nil
}

func (a *APIAdapter) FindNearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]entities.BloodBank, error) {
	banks, err := a.client.FindNearby(ctx, bloodapi.NearbyRequest{
		Latitude:  latitude,
		Longitude: longitude,
		RadiusKm:  radiusKm,
	})
	if err != nil {
		return nil, apperrors.NewExternalError("nearby blood bank lookup failed", err)
	}
	return banks, nil
}

func (a *APIAdapter) CreateRequest(ctx context.Context, input entities.BloodRequestInput) (*entities.BloodRequest, error) {
	request, err := a.client.CreateRequest(ctx, input)
	if err != nil {
		return nil, apperrors.NewExternalError("blood request submission failed", err)
	}
	return request, nil
}

func (a *APIAdapter) RequestStatus(ctx context.Context, requestID string) (*entities.BloodRequest, error) {
	return nil, apperrors.NewExternalError("request status has no upstream endpoint", nil)
}

func (a *APIAdapter) RegisterDonor(ctx context.Context, input entities.DonorInput) (*entities.DonorRegistration, error) {
	return nil, apperrors.NewExternalError("donor registration has no upstream endpoint", nil)
}

func (a *APIAdapter) UpcomingCamps(ctx context.Context, filter entities.CampFilter) ([]entities.BloodDonationCamp, error) {
	return nil, apperrors.NewExternalError("camp listings have no upstream endpoint", nil)
}

func (a *APIAdapter) Ping(ctx context.Context) error {
	if err := a.client.Health(ctx); err != nil {
		return apperrors.NewExternalError("blood backend health check failed", err)
	}
	return nil
}
