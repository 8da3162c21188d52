package services

import (
	"context"

	"github.com/obiora-dev/school-health-hub/internal/domain/providers"
	"github.com/obiora-dev/school-health-hub/internal/infrastructure/observability"
)

// ConnectionResult is the outcome of a connectivity probe.
type ConnectionResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ConnectionService probes whether the backing data source is reachable.
type ConnectionService struct {
	provider providers.BloodProvider
}

// NewConnectionService creates a new connection service
func NewConnectionService(provider providers.BloodProvider) *ConnectionService {
	return &ConnectionService{provider: provider}
}

// Test reports the reachability of the blood bank data source.
func (s *ConnectionService) Test(ctx context.Context) ConnectionResult {
	if err := s.provider.Ping(ctx); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("blood service connectivity probe failed")
		return ConnectionResult{
			Status:  StatusError,
			Message: "Unable to reach blood bank service",
		}
	}
	return ConnectionResult{
		Status:  StatusSuccess,
		Message: "Blood bank service is reachable",
	}
}
