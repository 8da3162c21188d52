package routes

import (
	"net/http"

	"github.com/obiora-dev/school-health-hub/internal/api/handlers"
	"github.com/obiora-dev/school-health-hub/internal/api/middleware"
	"github.com/obiora-dev/school-health-hub/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	availabilityHandler *handlers.AvailabilityHandler
	requestHandler      *handlers.RequestHandler
	donorHandler        *handlers.DonorHandler
	campHandler         *handlers.CampHandler
	connectionHandler   *handlers.ConnectionHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	availabilityHandler *handlers.AvailabilityHandler,
	requestHandler *handlers.RequestHandler,
	donorHandler *handlers.DonorHandler,
	campHandler *handlers.CampHandler,
	connectionHandler *handlers.ConnectionHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		availabilityHandler: availabilityHandler,
		requestHandler:      requestHandler,
		donorHandler:        donorHandler,
		campHandler:         campHandler,
		connectionHandler:   connectionHandler,

		metrics: metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Blood availability endpoints
	r.mux.HandleFunc("GET /api/blood/availability", r.availabilityHandler.SearchAvailability)
	r.mux.HandleFunc("GET /api/blood-banks/nearby", r.availabilityHandler.FindNearby)

	// Blood request endpoints
	r.mux.HandleFunc("POST /api/blood/requests", r.requestHandler.SubmitRequest)
	r.mux.HandleFunc("GET /api/blood/requests/{id}", r.requestHandler.GetRequestStatus)

	// Donor and camp endpoints
	r.mux.HandleFunc("POST /api/donors", r.donorHandler.RegisterDonor)
	r.mux.HandleFunc("GET /api/camps", r.campHandler.ListUpcoming)

	// Connectivity probe
	r.mux.HandleFunc("GET /api/blood/connection", r.connectionHandler.TestConnection)

	var handler http.Handler = r.mux
	handler = middleware.Compression(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.CORSMiddleware(handler)
	return handler
}
