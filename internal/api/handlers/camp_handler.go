package handlers

import (
	"context"
	"net/http"

	"github.com/obiora-dev/school-health-hub/internal/application/services"
	"github.com/obiora-dev/school-health-hub/internal/domain/entities"
)

type campService interface {
	Upcoming(ctx context.Context, filter entities.CampFilter) services.CampsResult
}

// CampHandler handles donation camp HTTP requests
type CampHandler struct {
	service campService
}

// NewCampHandler creates a new camp handler
func NewCampHandler(service campService) *CampHandler {
	return &CampHandler{service: service}
}

// ListUpcoming handles GET /api/camps
func (h *CampHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	result := h.service.Upcoming(r.Context(), entities.CampFilter{
		State:     query.Get("state"),
		District:  query.Get("district"),
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
	})
	respondWithJSON(w, http.StatusOK, result)
}
