package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sportsfollow/sportsfollow/internal/api/response"
	"github.com/sportsfollow/sportsfollow/internal/sports"
)

// MatchHandler handles upcoming-match endpoints.
type MatchHandler struct {
	sportsService *sports.Service
}

// NewMatchHandler creates a new MatchHandler.
func NewMatchHandler(sportsService *sports.Service) *MatchHandler {
	return &MatchHandler{sportsService: sportsService}
}

// Upcoming handles GET /api/matches/upcoming - next events in the default league.
func (h *MatchHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	matches, err := h.sportsService.UpcomingMatches(r.Context(), "")
	if err != nil {
		response.InternalError(w, r, "could not fetch upcoming matches")
		return
	}
	response.JSON(w, r, http.StatusOK, matches)
}

// UpcomingForTeam handles GET /api/matches/upcoming/{team}.
func (h *MatchHandler) UpcomingForTeam(w http.ResponseWriter, r *http.Request) {
	matches, err := h.sportsService.UpcomingMatches(r.Context(), chi.URLParam(r, "team"))
	if err != nil {
		response.InternalError(w, r, "could not fetch upcoming matches")
		return
	}
	response.JSON(w, r, http.StatusOK, matches)
}
