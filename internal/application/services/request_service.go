package services

import (
	"context"
	"errors"

	"github.com/obiora-dev/school-health-hub/internal/domain/entities"
	"github.com/obiora-dev/school-health-hub/internal/domain/providers"
	"github.com/obiora-dev/school-health-hub/internal/infrastructure/observability"
)

// RequestResult is the outcome of a blood request submission. On error
// the request is an empty pending stub with an empty RequestID.
type RequestResult struct {
	Status  string               `json:"status"`
	Request entities.BloodRequest `json:"request"`
	Message string               `json:"message,omitempty"`
}

// RequestStatusResult is the outcome of a request status lookup.
type RequestStatusResult struct {
	Status  string                 `json:"status"`
	Request *entities.BloodRequest `json:"request,omitempty"`
	Message string                 `json:"message,omitempty"`
}

// RequestService manages the blood request lifecycle.
type RequestService struct {
	provider providers.BloodProvider
}

// NewRequestService creates a new request service
func NewRequestService(provider providers.BloodProvider) *RequestService {
	return &RequestService{provider: provider}
}

// Submit validates and submits a blood request. Domain failures (invalid
// input, insufficient inventory anywhere) are reported in the result
// status, never as an error.
func (s *RequestService) Submit(ctx context.Context, input entities.BloodRequestInput) RequestResult {
	ctx, span := observability.StartSpan(ctx, "RequestService.Submit")
	defer span.End()

	if !entities.IsValidBloodGroup(input.BloodGroup) {
		return RequestResult{
			Status:  StatusError,
			Request: pendingStub(input),
			Message: "Unknown blood group",
		}
	}
	if input.UnitsRequired <= 0 {
		return RequestResult{
			Status:  StatusError,
			Request: pendingStub(input),
			Message: "Units required must be a positive number",
		}
	}

	request, err := s.provider.CreateRequest(ctx, input)
	if err != nil {
		observability.RecordError(span, err)
		if errors.Is(err, providers.ErrInsufficientInventory) {
			return RequestResult{
				Status:  StatusError,
				Request: pendingStub(input),
				Message: "No blood banks have sufficient units available",
			}
		}
		observability.LoggerFromContext(ctx).Error().Err(err).
			Str("blood_group", input.BloodGroup).
			Int("units_required", input.UnitsRequired).
			Msg("blood request submission failed")
		return RequestResult{
			Status:  StatusError,
			Request: pendingStub(input),
			Message: "Failed to submit blood request",
		}
	}

	observability.LoggerFromContext(ctx).Info().
		Str("request_id", request.RequestID).
		Str("assigned_bank", request.AssignedBloodBank).
		Str("urgency", request.Urgency).
		Msg("blood request submitted")
	return RequestResult{Status: StatusSuccess, Request: *request}
}

// Status looks up the state of a previously submitted request. In mock
// mode the answer is always a synthesized fulfilled record; no request
// state is persisted between calls.
func (s *RequestService) Status(ctx context.Context, requestID string) RequestStatusResult {
	if requestID == "" {
		return RequestStatusResult{Status: StatusError, Message: "Request ID is required"}
	}

	request, err := s.provider.RequestStatus(ctx, requestID)
	if err != nil {
		observability.LoggerFromContext(ctx).Error().Err(err).
			Str("request_id", requestID).
			Msg("request status lookup failed")
		return RequestStatusResult{Status: StatusError, Message: "Failed to check request status"}
	}
	return RequestStatusResult{Status: StatusSuccess, Request: request}
}

// pendingStub is the empty request record returned with domain failures.
func pendingStub(input entities.BloodRequestInput) entities.BloodRequest {
	return entities.BloodRequest{
		RequestID:     "",
		Status:        entities.RequestStatusPending,
		BloodGroup:    input.BloodGroup,
		UnitsRequired: input.UnitsRequired,
		Urgency:       input.Urgency,
		RequesterName: input.RequesterName,
		RequesterType: input.RequesterType,
	}
}
