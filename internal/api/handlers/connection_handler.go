package handlers

import (
	"context"
	"net/http"

	"github.com/obiora-dev/school-health-hub/internal/application/services"
)

type connectionService interface {
	Test(ctx context.Context) services.ConnectionResult
}

// ConnectionHandler handles connectivity probe HTTP requests
type ConnectionHandler struct {
	service connectionService
}

// NewConnectionHandler creates a new connection handler
func NewConnectionHandler(service connectionService) *ConnectionHandler {
	return &ConnectionHandler{service: service}
}

// TestConnection handles GET /api/blood/connection
func (h *ConnectionHandler) TestConnection(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.service.Test(r.Context()))
}
