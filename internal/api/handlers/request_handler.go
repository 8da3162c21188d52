package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/obiora-dev/school-health-hub/internal/application/services"
	"github.com/obiora-dev/school-health-hub/internal/domain/entities"
)

type requestService interface {
	Submit(ctx context.Context, input entities.BloodRequestInput) services.RequestResult
	Status(ctx context.Context, requestID string) services.RequestStatusResult
}

// RequestHandler handles blood request HTTP requests
type RequestHandler struct {
	service requestService
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(service requestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// SubmitRequest handles POST /api/blood/requests
func (h *RequestHandler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	var input entities.BloodRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := h.service.Submit(r.Context(), input)
	respondWithJSON(w, http.StatusOK, result)
}

// GetRequestStatus handles GET /api/blood/requests/{id}
func (h *RequestHandler) GetRequestStatus(w http.ResponseWriter, r *http.Request) {
	requestID := r.PathValue("id")
	if requestID == "" {
		respondWithError(w, http.StatusBadRequest, "request ID is required")
		return
	}

	result := h.service.Status(r.Context(), requestID)
	respondWithJSON(w, http.StatusOK, result)
}
