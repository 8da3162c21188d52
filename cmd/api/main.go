package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/obiora-dev/school-health-hub/internal/adapters/cache"
	"github.com/obiora-dev/school-health-hub/internal/adapters/providers/blood"
	"github.com/obiora-dev/school-health-hub/internal/api/handlers"
	"github.com/obiora-dev/school-health-hub/internal/api/routes"
	"github.com/obiora-dev/school-health-hub/internal/application/services"
	"github.com/obiora-dev/school-health-hub/internal/domain/providers"
	"github.com/obiora-dev/school-health-hub/internal/infrastructure/clients/redis"
	"github.com/obiora-dev/school-health-hub/internal/infrastructure/observability"
	"github.com/obiora-dev/school-health-hub/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Environment)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Redis is optional; the service runs without caching when unavailable.
	var cacheProvider providers.CacheProvider
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, running without availability cache")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		log.Info().Msg("redis cache initialized")
	}

	// Mock mode is decided once here, from the loaded configuration.
	bloodProvider := blood.NewBloodProvider(cfg.BloodAPI, providers.SleepDelayer{}, metrics)

	availabilityService := services.NewAvailabilityService(bloodProvider, cacheProvider, metrics)
	requestService := services.NewRequestService(bloodProvider)
	donorService := services.NewDonorService(bloodProvider)
	campService := services.NewCampService(bloodProvider)
	connectionService := services.NewConnectionService(bloodProvider)

	router := routes.NewRouter(
		handlers.NewAvailabilityHandler(availabilityService),
		handlers.NewRequestHandler(requestService),
		handlers.NewDonorHandler(donorService),
		handlers.NewCampHandler(campService),
		handlers.NewConnectionHandler(connectionService),
		metrics,
	)

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router.SetupRoutes(),
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
