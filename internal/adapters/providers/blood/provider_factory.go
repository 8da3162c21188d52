package blood

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/obiora-dev/school-health-hub/internal/domain/entities"
	"github.com/obiora-dev/school-health-hub/internal/domain/providers"
	"github.com/obiora-dev/school-health-hub/internal/infrastructure/clients/bloodapi"
	"github.com/obiora-dev/school-health-hub/internal/infrastructure/observability"
	"github.com/obiora-dev/school-health-hub/pkg/config"
)

// NewBloodProvider builds the provider for the given configuration. Mock
// mode (forced, or no backend URL) is decided here, once; reconfiguring
// the environment does not affect an already-built provider.
func NewBloodProvider(cfg config.BloodAPIConfig, delayer providers.Delayer, metrics *observability.Metrics) providers.BloodProvider {
	mock := NewMockAdapter(delayer)
	if cfg.UseMock() {
		log.Info().Msg("blood provider running in mock mode")
		return mock
	}

	return &FallbackProvider{
		primary:  NewAPIAdapter(bloodapi.NewClient(cfg.BaseURL, cfg.APIKey)),
		fallback: mock,
		metrics:  metrics,
	}
}

// FallbackProvider tries the real backend first and falls through to the
// mock catalog on any failure. Exactly one fallback per call, never a
// retried upstream attempt. Operations without an upstream endpoint go
// straight to the mock; the connectivity probe reports the real backend
// directly, without falling back.
type FallbackProvider struct {
	primary  providers.BloodProvider
	fallback providers.BloodProvider
	metrics  *observability.Metrics
}

func (p *FallbackProvider) SearchAvailability(ctx context.Context, query providers.BloodAvailabilityQuery) ([]entities.BloodBank, error) {
	banks, err := p.primary.SearchAvailability(ctx, query)
	if err != nil {
		p.recordFallback(ctx, "search_availability", err)
		return p.fallback.SearchAvailability(ctx, query)
	}
	return banks, nil
}

func (p *FallbackProvider) FindNearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]entities.BloodBank, error) {
	banks, err := p.primary.FindNearby(ctx, latitude, longitude, radiusKm)
	if err != nil {
		p.recordFallback(ctx, "find_nearby", err)
		return p.fallback.FindNearby(ctx, latitude, longitude, radiusKm)
	}
	return banks, nil
}

func (p *FallbackProvider) CreateRequest(ctx context.Context, input entities.BloodRequestInput) (*entities.BloodRequest, error) {
	request, err := p.primary.CreateRequest(ctx, input)
	if err != nil {
		p.recordFallback(ctx, "create_request", err)
		return p.fallback.CreateRequest(ctx, input)
	}
	return request, nil
}

func (p *FallbackProvider) RequestStatus(ctx context.Context, requestID string) (*entities.BloodRequest, error) {
	return p.fallback.RequestStatus(ctx, requestID)
}

func (p *FallbackProvider) RegisterDonor(ctx context.Context, input entities.DonorInput) (*entities.DonorRegistration, error) {
	return p.fallback.RegisterDonor(ctx, input)
}

func (p *FallbackProvider) UpcomingCamps(ctx context.Context, filter entities.CampFilter) ([]entities.BloodDonationCamp, error) {
	return p.fallback.UpcomingCamps(ctx, filter)
}

func (p *FallbackProvider) Ping(ctx context.Context) error {
	return p.primary.Ping(ctx)
}

func (p *FallbackProvider) recordFallback(ctx context.Context, operation string, err error) {
	log.Warn().Err(err).Str("operation", operation).Msg("blood backend failed, falling back to mock data")
	if p.metrics != nil {
		observability.RecordFallback(ctx, p.metrics, operation)
	}
}
