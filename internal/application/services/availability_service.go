package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/obiora-dev/school-health-hub/internal/domain/entities"
	"github.com/obiora-dev/school-health-hub/internal/domain/providers"
	"github.com/obiora-dev/school-health-hub/internal/infrastructure/observability"
)

// availabilityCacheTTLSeconds bounds how long availability snapshots are
// served from cache. Stock levels go stale quickly.
const availabilityCacheTTLSeconds = 60

// AvailabilityResult is the outcome of an availability query. Data is
// always non-nil; zero matches is a success with empty data.
type AvailabilityResult struct {
	Status  string                `json:"status"`
	Data    []entities.BloodBank  `json:"data"`
	Message string                `json:"message,omitempty"`
}

// AvailabilityService answers blood availability and nearby-bank queries.
// The cache is optional; a nil cache disables it.
type AvailabilityService struct {
	provider providers.BloodProvider
	cache    providers.CacheProvider
	metrics  *observability.Metrics
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(provider providers.BloodProvider, cache providers.CacheProvider, metrics *observability.Metrics) *AvailabilityService {
	return &AvailabilityService{
		provider: provider,
		cache:    cache,
		metrics:  metrics,
	}
}

// Search returns banks stocking the requested blood group, filtered by
// the optional pincode/radius/state/district and sorted by distance.
func (s *AvailabilityService) Search(ctx context.Context, query providers.BloodAvailabilityQuery) AvailabilityResult {
	ctx, span := observability.StartSpan(ctx, "AvailabilityService.Search")
	defer span.End()

	key := fmt.Sprintf("blood:availability:%s:%s:%g:%s:%s",
		query.BloodGroup, query.Pincode, query.RadiusKm, query.State, query.District)
	if banks, ok := s.cachedBanks(ctx, key); ok {
		return AvailabilityResult{Status: StatusSuccess, Data: banks}
	}

	banks, err := s.provider.SearchAvailability(ctx, query)
	if err != nil {
		observability.RecordError(span, err)
		observability.LoggerFromContext(ctx).Error().Err(err).
			Str("blood_group", query.BloodGroup).
			Msg("blood availability search failed")
		return AvailabilityResult{
			Status:  StatusError,
			Data:    []entities.BloodBank{},
			Message: "Failed to search blood availability",
		}
	}
	if banks == nil {
		banks = []entities.BloodBank{}
	}

	s.storeBanks(ctx, key, banks)
	return AvailabilityResult{Status: StatusSuccess, Data: banks}
}

// Nearby returns banks within radiusKm of the given coordinates, sorted
// by distance.
func (s *AvailabilityService) Nearby(ctx context.Context, latitude, longitude, radiusKm float64) AvailabilityResult {
	ctx, span := observability.StartSpan(ctx, "AvailabilityService.Nearby")
	defer span.End()

	key := fmt.Sprintf("blood:nearby:%g:%g:%g", latitude, longitude, radiusKm)
	if banks, ok := s.cachedBanks(ctx, key); ok {
		return AvailabilityResult{Status: StatusSuccess, Data: banks}
	}

	banks, err := s.provider.FindNearby(ctx, latitude, longitude, radiusKm)
	if err != nil {
		observability.RecordError(span, err)
		observability.LoggerFromContext(ctx).Error().Err(err).
			Float64("radius_km", radiusKm).
			Msg("nearby blood bank lookup failed")
		return AvailabilityResult{
			Status:  StatusError,
			Data:    []entities.BloodBank{},
			Message: "Failed to find nearby blood banks",
		}
	}
	if banks == nil {
		banks = []entities.BloodBank{}
	}

	s.storeBanks(ctx, key, banks)
	return AvailabilityResult{Status: StatusSuccess, Data: banks}
}

func (s *AvailabilityService) cachedBanks(ctx context.Context, key string) ([]entities.BloodBank, bool) {
	if s.cache == nil {
		return nil, false
	}

	payload, err := s.cache.Get(ctx, key)
	if err != nil {
		if s.metrics != nil {
			observability.RecordCacheMiss(ctx, s.metrics, key)
		}
		return nil, false
	}

	var banks []entities.BloodBank
	if err := json.Unmarshal(payload, &banks); err != nil {
		return nil, false
	}
	if s.metrics != nil {
		observability.RecordCacheHit(ctx, s.metrics, key)
	}
	return banks, true
}

func (s *AvailabilityService) storeBanks(ctx context.Context, key string, banks []entities.BloodBank) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(banks)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, payload, availabilityCacheTTLSeconds); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Str("key", key).Msg("failed to cache availability result")
	}
}
