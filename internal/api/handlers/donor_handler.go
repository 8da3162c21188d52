package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/obiora-dev/school-health-hub/internal/domain/entities"
)

type donorService interface {
	Register(ctx context.Context, input entities.DonorInput) entities.DonorRegistration
}

// DonorHandler handles donor registration HTTP requests
type DonorHandler struct {
	service donorService
}

// NewDonorHandler creates a new donor handler
func NewDonorHandler(service donorService) *DonorHandler {
	return &DonorHandler{service: service}
}

// RegisterDonor handles POST /api/donors
func (h *DonorHandler) RegisterDonor(w http.ResponseWriter, r *http.Request) {
	var input entities.DonorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	registration := h.service.Register(r.Context(), input)
	respondWithJSON(w, http.StatusOK, registration)
}
