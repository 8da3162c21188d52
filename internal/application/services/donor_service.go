package services

import (
	"context"

	"github.com/obiora-dev/school-health-hub/internal/domain/entities"
	"github.com/obiora-dev/school-health-hub/internal/domain/providers"
	"github.com/obiora-dev/school-health-hub/internal/infrastructure/observability"
)

// DonorService registers donors and evaluates eligibility.
type DonorService struct {
	provider providers.BloodProvider
}

// NewDonorService creates a new donor service
func NewDonorService(provider providers.BloodProvider) *DonorService {
	return &DonorService{provider: provider}
}

// Register evaluates donor eligibility and registers the donor.
// Ineligibility is a failed registration record, not an error.
func (s *DonorService) Register(ctx context.Context, input entities.DonorInput) entities.DonorRegistration {
	registration, err := s.provider.RegisterDonor(ctx, input)
	if err != nil {
		observability.LoggerFromContext(ctx).Error().Err(err).Msg("donor registration failed")
		return entities.DonorRegistration{
			RegistrationStatus:  entities.RegistrationStatusFailed,
			EligibleForDonation: false,
			Message:             "Failed to register donor",
		}
	}

	observability.LoggerFromContext(ctx).Info().
		Str("donor_id", registration.DonorID).
		Bool("eligible", registration.EligibleForDonation).
		Msg("donor registration processed")
	return *registration
}
