// Package api provides the HTTP API for SportsFollow.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/sportsfollow/sportsfollow/internal/api/handler"
	"github.com/sportsfollow/sportsfollow/internal/api/middleware"
	"github.com/sportsfollow/sportsfollow/internal/device"
	"github.com/sportsfollow/sportsfollow/internal/notification"
	"github.com/sportsfollow/sportsfollow/internal/provider/resilience"
	"github.com/sportsfollow/sportsfollow/internal/sports"
	"github.com/sportsfollow/sportsfollow/internal/user"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Logger      zerolog.Logger
	ServiceName string
	Environment string
	Metrics     *middleware.Metrics

	// Pinger reports store connectivity. DB-backed route groups are gated
	// on it; nil means the store was never connected.
	Pinger middleware.Pinger

	// Providers is the registry of upstream clients reported by /health.
	Providers *resilience.Registry

	UserService         *user.Service
	DeviceService       *device.Service
	NotificationService *notification.Service
	SportsProvider      sports.Provider
	SportsService       *sports.Service
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "sportsfollow-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.RequireJSON)          // Reject non-JSON request bodies
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Pinger, cfg.Providers, cfg.Environment)
	userHandler := handler.NewUserHandler(cfg.UserService)
	notificationHandler := handler.NewNotificationHandler(cfg.DeviceService, cfg.NotificationService)
	sportsHandler := handler.NewSportsHandler(cfg.SportsProvider)
	matchHandler := handler.NewMatchHandler(cfg.SportsService)

	// Store readiness gate for DB-backed route groups
	requireDatabase := middleware.RequireDatabase(cfg.Pinger)

	// Rate limit middleware per endpoint category
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)   // 100 req/min
	broadcastRateLimit := middleware.RateLimitByIP(middleware.BroadcastRateLimit) // 10 req/min

	// Liveness probes (public, unlimited)
	r.Get("/", opsHandler.Root)
	r.Get("/health", opsHandler.HealthCheck)

	// User profile and favorites (store-backed)
	r.Route("/api/users", func(r chi.Router) {
		r.Use(requireDatabase)
		r.Use(standardRateLimit)
		r.Post("/", userHandler.SyncUser)
		r.Route("/{googleId}", func(r chi.Router) {
			r.Get("/", userHandler.GetUser)
			r.Put("/players", userHandler.AddFavoritePlayer)
			r.Delete("/players/{playerId}", userHandler.RemoveFavoritePlayer)
			r.Put("/teams", userHandler.AddFavoriteTeam)
			r.Delete("/teams/{teamId}", userHandler.RemoveFavoriteTeam)
		})
	})

	// Device registration and push dispatch (store-backed)
	r.Route("/api/notifications", func(r chi.Router) {
		r.Use(requireDatabase)
		r.With(standardRateLimit).Post("/register", notificationHandler.RegisterDevice)
		r.With(standardRateLimit).Post("/send", notificationHandler.SendNotification)
		r.With(broadcastRateLimit).Post("/broadcast", notificationHandler.Broadcast)
	})

	// Sports data proxy (upstream-backed, no store)
	r.Route("/api/sports", func(r chi.Router) {
		r.Use(standardRateLimit)
		r.Get("/players/search/{name}", sportsHandler.SearchPlayers)
		r.Get("/players/{id}", sportsHandler.GetPlayer)
		r.Get("/teams/search/{name}", sportsHandler.SearchTeams)
		r.Get("/teams/{id}", sportsHandler.GetTeam)
		r.Get("/teams/{id}/players", sportsHandler.ListTeamPlayers)
		r.Get("/teams/{id}/events/next", sportsHandler.NextEvents)
		r.Get("/teams/{id}/events/last", sportsHandler.LastEvents)
		r.Get("/leagues/{league}", sportsHandler.ListLeagues)
		r.Get("/leagues/{league}/teams", sportsHandler.ListLeagueTeams)
		r.Get("/all", sportsHandler.ListSports)
	})

	// Upcoming matches (upstream-backed)
	r.Route("/api/matches", func(r chi.Router) {
		r.Use(standardRateLimit)
		r.Get("/upcoming", matchHandler.Upcoming)
		r.Get("/upcoming/{team}", matchHandler.UpcomingForTeam)
	})

	return r
}
