package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/obiora-dev/school-health-hub/internal/application/services"
	"github.com/obiora-dev/school-health-hub/internal/domain/providers"
)

type availabilityService interface {
	Search(ctx context.Context, query providers.BloodAvailabilityQuery) services.AvailabilityResult
	Nearby(ctx context.Context, latitude, longitude, radiusKm float64) services.AvailabilityResult
}

// AvailabilityHandler handles blood availability HTTP requests
type AvailabilityHandler struct {
	service availabilityService
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(service availabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{service: service}
}

// SearchAvailability handles GET /api/blood/availability
func (h *AvailabilityHandler) SearchAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	bloodGroup := query.Get("blood_group")
	if bloodGroup == "" {
		respondWithError(w, http.StatusBadRequest, "blood_group is required")
		return
	}

	var radiusKm float64
	if raw := query.Get("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			respondWithError(w, http.StatusBadRequest, "radius must be a non-negative number")
			return
		}
		radiusKm = parsed
	}

	result := h.service.Search(r.Context(), providers.BloodAvailabilityQuery{
		BloodGroup: bloodGroup,
		Pincode:    query.Get("pincode"),
		RadiusKm:   radiusKm,
		State:      query.Get("state"),
		District:   query.Get("district"),
	})
	respondWithJSON(w, http.StatusOK, result)
}

// FindNearby handles GET /api/blood-banks/nearby
func (h *AvailabilityHandler) FindNearby(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	latitude, err := strconv.ParseFloat(query.Get("latitude"), 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "latitude must be a number")
		return
	}
	longitude, err := strconv.ParseFloat(query.Get("longitude"), 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "longitude must be a number")
		return
	}

	radiusKm := 50.0
	if raw := query.Get("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			respondWithError(w, http.StatusBadRequest, "radius must be a non-negative number")
			return
		}
		radiusKm = parsed
	}

	result := h.service.Nearby(r.Context(), latitude, longitude, radiusKm)
	respondWithJSON(w, http.StatusOK, result)
}
