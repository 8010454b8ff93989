// Package main provides the entrypoint for the SportsFollow API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/sportsfollow/sportsfollow/internal/api"
	"github.com/sportsfollow/sportsfollow/internal/api/middleware"
	"github.com/sportsfollow/sportsfollow/internal/database"
	"github.com/sportsfollow/sportsfollow/internal/device"
	"github.com/sportsfollow/sportsfollow/internal/notification"
	"github.com/sportsfollow/sportsfollow/internal/notification/expo"
	"github.com/sportsfollow/sportsfollow/internal/provider/resilience"
	"github.com/sportsfollow/sportsfollow/internal/sports"
	"github.com/sportsfollow/sportsfollow/internal/sports/thesportsdb"
	"github.com/sportsfollow/sportsfollow/internal/telemetry"
	"github.com/sportsfollow/sportsfollow/internal/user"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "sportsfollow-api"

	// Local .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting SportsFollow API")

	// Get configuration from environment
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "5000"
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryEnabled := os.Getenv("OTEL_ENABLED") == "true"

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        telemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryEnabled {
		log.Info().
			Str("otlp_endpoint", otlpEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	// Connect to database. A failed connection is not fatal: the server
	// still serves the sports proxy and health endpoints, and store-backed
	// routes answer 503 until the store comes back.
	dbConfig := database.ConfigFromEnv()
	pool, err := database.Connect(ctx, dbConfig)
	if err != nil {
		log.Error().Err(err).Msg("database unavailable, store-backed routes disabled")
	} else {
		defer pool.Close()
		log.Info().
			Str("host", dbConfig.Host).
			Int("port", dbConfig.Port).
			Str("database", dbConfig.Database).
			Msg("database connected")
	}

	// Initialize repositories and services. With no pool the store-backed
	// services are still constructed; the readiness gate keeps requests
	// from ever reaching them.
	var (
		userRepo   user.Repository
		deviceRepo device.Repository
		legacyRepo device.LegacyTokenReader
		dbPinger   middleware.Pinger
	)
	if pool != nil {
		userRepo = user.NewPostgresRepository(pool)
		deviceRepo = device.NewPostgresRepository(pool)
		legacyRepo = device.NewPostgresLegacyTokenRepository(pool)
		dbPinger = pool
	} else {
		userRepo = user.NewInMemoryRepository()
		deviceRepo = device.NewInMemoryRepository()
	}

	userService := user.NewService(userRepo)
	log.Info().Msg("user service initialized")

	deviceService := device.NewService(deviceRepo)
	log.Info().Msg("device service initialized")

	// Upstream provider clients share a registry so /health can report
	// their circuit state.
	registry := resilience.NewRegistry()

	expoHTTPClient := resilience.NewClient(resilience.ClientConfig{
		Name:    expo.ProviderName,
		Timeout: 15 * time.Second,
	})
	registry.Register(expo.ProviderName, expoHTTPClient)

	expoClient := expo.NewClient(expo.ClientConfig{
		HTTPClient: expoHTTPClient,
	})

	notificationService := notification.NewService(notification.ServiceConfig{
		Devices: deviceRepo,
		Legacy:  legacyRepo,
		Gateway: expoClient,
		Logger:  log,
	})
	log.Info().Msg("notification service initialized")

	sportsHTTPClient := resilience.NewClient(resilience.ClientConfig{
		Name:    thesportsdb.ProviderName,
		Timeout: 10 * time.Second,
	})
	registry.Register(thesportsdb.ProviderName, sportsHTTPClient)

	sportsClient := thesportsdb.NewClient(thesportsdb.ClientConfig{
		APIKey:     os.Getenv("SPORTSDB_API_KEY"),
		HTTPClient: sportsHTTPClient,
		Logger:     log,
	})
	sportsService := sports.NewService(sportsClient)
	log.Info().Msg("sports service initialized")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Logger:              log,
		ServiceName:         serviceName,
		Environment:         env,
		Metrics:             metrics,
		Pinger:              dbPinger,
		Providers:           registry,
		UserService:         userService,
		DeviceService:       deviceService,
		NotificationService: notificationService,
		SportsProvider:      sportsClient,
		SportsService:       sportsService,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
