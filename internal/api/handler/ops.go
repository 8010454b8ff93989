package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sportsfollow/sportsfollow/internal/api/middleware"
	"github.com/sportsfollow/sportsfollow/internal/api/models"
	"github.com/sportsfollow/sportsfollow/internal/api/response"
	"github.com/sportsfollow/sportsfollow/internal/provider/resilience"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	pinger      middleware.Pinger
	registry    *resilience.Registry
	environment string
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(pinger middleware.Pinger, registry *resilience.Registry, environment string) *OpsHandler {
	return &OpsHandler{
		pinger:      pinger,
		registry:    registry,
		environment: environment,
	}
}

// Root handles GET / - a plain-text liveness probe.
func (h *OpsHandler) Root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("SportsFollow API is running"))
}

// HealthCheck handles GET /health - service status including store
// connectivity and upstream circuit state. The probe itself always answers
// 200; a broken store shows up in the body, not the status code.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	database := models.DatabaseDisconnected
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		if err := h.pinger.Ping(ctx); err == nil {
			database = models.DatabaseConnected
		}
		cancel()
	}

	var providers []models.ProviderHealth
	if h.registry != nil {
		for _, p := range h.registry.GetAllHealth() {
			providers = append(providers, models.ProviderHealth{
				Name:         p.Name,
				CircuitState: p.CircuitState.String(),
				Healthy:      p.IsHealthy(),
			})
		}
	}

	response.JSON(w, r, http.StatusOK, models.Health{
		Status:      "ok",
		Timestamp:   models.Timestamp(time.Now()),
		Database:    database,
		Environment: h.environment,
		Providers:   providers,
	})
}
