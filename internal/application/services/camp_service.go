package services

import (
	"context"

	"github.com/obiora-dev/school-health-hub/internal/domain/entities"
	"github.com/obiora-dev/school-health-hub/internal/domain/providers"
	"github.com/obiora-dev/school-health-hub/internal/infrastructure/observability"
)

// CampsResult is the outcome of a camp listing.
type CampsResult struct {
	Status  string                       `json:"status"`
	Data    []entities.BloodDonationCamp `json:"data"`
	Message string                       `json:"message,omitempty"`
}

// CampService lists upcoming blood donation camps. There is no upstream
// endpoint for camps; listings always come from the mock catalog, and
// filter parameters are accepted but not applied.
type CampService struct {
	provider providers.BloodProvider
}

// NewCampService creates a new camp service
func NewCampService(provider providers.BloodProvider) *CampService {
	return &CampService{provider: provider}
}

// Upcoming lists upcoming donation camps.
func (s *CampService) Upcoming(ctx context.Context, filter entities.CampFilter) CampsResult {
	camps, err := s.provider.UpcomingCamps(ctx, filter)
	if err != nil {
		observability.LoggerFromContext(ctx).Error().Err(err).Msg("camp listing failed")
		return CampsResult{
			Status:  StatusError,
			Data:    []entities.BloodDonationCamp{},
			Message: "Failed to list upcoming camps",
		}
	}
	return CampsResult{Status: StatusSuccess, Data: camps}
}
