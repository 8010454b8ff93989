package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sportsfollow/sportsfollow/internal/api/response"
	"github.com/sportsfollow/sportsfollow/internal/sports"
)

// SportsHandler proxies read-only lookups to the upstream sports data API.
type SportsHandler struct {
	provider sports.Provider
}

// NewSportsHandler creates a new SportsHandler.
func NewSportsHandler(provider sports.Provider) *SportsHandler {
	return &SportsHandler{provider: provider}
}

// SearchPlayers handles GET /api/sports/players/search/{name}.
func (h *SportsHandler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.provider.SearchPlayers(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.writeSportsError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, players)
}

// GetPlayer handles GET /api/sports/players/{id}.
func (h *SportsHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	player, err := h.provider.GetPlayer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeSportsError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, player)
}

// SearchTeams handles GET /api/sports/teams/search/{name}.
func (h *SportsHandler) SearchTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.provider.SearchTeams(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.writeSportsError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, teams)
}

// GetTeam handles GET /api/sports/teams/{id}.
func (h *SportsHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	team, err := h.provider.GetTeam(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeSportsError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, team)
}

// ListTeamPlayers handles GET /api/sports/teams/{id}/players.
func (h *SportsHandler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.provider.ListTeamPlayers(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeSportsError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, players)
}

// NextEvents handles GET /api/sports/teams/{id}/events/next.
func (h *SportsHandler) NextEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.provider.NextEvents(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeSportsError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, events)
}

// LastEvents handles GET /api/sports/teams/{id}/events/last.
func (h *SportsHandler) LastEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.provider.LastEvents(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeSportsError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, events)
}

// ListLeagues handles GET /api/sports/leagues/{league}, where the path
// value is a sport name. The segment shares its wildcard name with the
// league-teams route below it.
func (h *SportsHandler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	leagues, err := h.provider.ListLeagues(r.Context(), chi.URLParam(r, "league"))
	if err != nil {
		h.writeSportsError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, leagues)
}

// ListLeagueTeams handles GET /api/sports/leagues/{league}/teams.
func (h *SportsHandler) ListLeagueTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.provider.ListLeagueTeams(r.Context(), chi.URLParam(r, "league"))
	if err != nil {
		h.writeSportsError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, teams)
}

// ListSports handles GET /api/sports/all.
func (h *SportsHandler) ListSports(w http.ResponseWriter, r *http.Request) {
	allSports, err := h.provider.ListSports(r.Context())
	if err != nil {
		h.writeSportsError(w, r, err)
		return
	}
	response.JSON(w, r, http.StatusOK, allSports)
}

func (h *SportsHandler) writeSportsError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, sports.ErrPlayerNotFound):
		response.NotFound(w, r, "player not found")
	case errors.Is(err, sports.ErrTeamNotFound):
		response.NotFound(w, r, "team not found")
	default:
		response.InternalError(w, r, "sports data is currently unavailable")
	}
}
