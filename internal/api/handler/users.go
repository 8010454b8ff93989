// Package handler provides HTTP handlers for the SportsFollow API.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sportsfollow/sportsfollow/internal/api/models"
	"github.com/sportsfollow/sportsfollow/internal/api/response"
	"github.com/sportsfollow/sportsfollow/internal/user"
)

// UserHandler handles user profile and favorites endpoints.
type UserHandler struct {
	userService *user.Service
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

// SyncUser handles POST /api/users - create or refresh a profile after login.
func (h *UserHandler) SyncUser(w http.ResponseWriter, r *http.Request) {
	var input models.UserSyncRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	fieldErrors := validateSyncInput(&input)
	if len(fieldErrors) > 0 {
		response.BadRequest(w, r, "validation failed", fieldErrors)
		return
	}

	u, created, err := h.userService.SyncProfile(r.Context(), user.SyncInput{
		GoogleID: input.GoogleID,
		Name:     input.Name,
		Email:    input.Email,
		Picture:  input.Picture,
	})
	if err != nil {
		h.writeUserError(w, r, err)
		return
	}

	if created {
		location := fmt.Sprintf("/api/users/%s", u.GoogleID)
		response.Created(w, r, location, toAPIUser(u))
		return
	}
	response.JSON(w, r, http.StatusOK, toAPIUser(u))
}

// GetUser handles GET /api/users/{googleId}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	googleID := chi.URLParam(r, "googleId")

	u, err := h.userService.GetProfile(r.Context(), googleID)
	if err != nil {
		h.writeUserError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toAPIUser(u))
}

// AddFavoritePlayer handles PUT /api/users/{googleId}/players.
func (h *UserHandler) AddFavoritePlayer(w http.ResponseWriter, r *http.Request) {
	googleID := chi.URLParam(r, "googleId")

	var input models.FavoritePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	u, err := h.userService.AddFavoritePlayer(r.Context(), googleID, user.FavoritePlayer{
		PlayerID:   input.PlayerID,
		PlayerName: input.PlayerName,
		TeamID:     input.TeamID,
		TeamName:   input.TeamName,
	})
	if err != nil {
		h.writeUserError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toAPIUser(u))
}

// AddFavoriteTeam handles PUT /api/users/{googleId}/teams.
func (h *UserHandler) AddFavoriteTeam(w http.ResponseWriter, r *http.Request) {
	googleID := chi.URLParam(r, "googleId")

	var input models.FavoriteTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	u, err := h.userService.AddFavoriteTeam(r.Context(), googleID, user.FavoriteTeam{
		TeamID:   input.TeamID,
		TeamName: input.TeamName,
	})
	if err != nil {
		h.writeUserError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toAPIUser(u))
}

// RemoveFavoritePlayer handles DELETE /api/users/{googleId}/players/{playerId}.
func (h *UserHandler) RemoveFavoritePlayer(w http.ResponseWriter, r *http.Request) {
	googleID := chi.URLParam(r, "googleId")
	playerID := chi.URLParam(r, "playerId")

	u, err := h.userService.RemoveFavoritePlayer(r.Context(), googleID, playerID)
	if err != nil {
		h.writeUserError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toAPIUser(u))
}

// RemoveFavoriteTeam handles DELETE /api/users/{googleId}/teams/{teamId}.
func (h *UserHandler) RemoveFavoriteTeam(w http.ResponseWriter, r *http.Request) {
	googleID := chi.URLParam(r, "googleId")
	teamID := chi.URLParam(r, "teamId")

	u, err := h.userService.RemoveFavoriteTeam(r.Context(), googleID, teamID)
	if err != nil {
		h.writeUserError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, toAPIUser(u))
}

// writeUserError maps user service errors to HTTP responses. Duplicate
// favorites are reported as 400 alongside plain validation failures.
func (h *UserHandler) writeUserError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(w, r, "user not found")
	case errors.Is(err, user.ErrPlayerAlreadyFavorite),
		errors.Is(err, user.ErrTeamAlreadyFavorite),
		errors.Is(err, user.ErrInvalidInput):
		response.BadRequest(w, r, err.Error(), nil)
	default:
		response.InternalError(w, r, "internal server error")
	}
}

// validateSyncInput validates profile sync input and returns any field errors.
func validateSyncInput(input *models.UserSyncRequest) []models.FieldError {
	var fieldErrors []models.FieldError
	if strings.TrimSpace(input.GoogleID) == "" {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "google_id", Message: "google_id is required", Code: "required"})
	}
	if strings.TrimSpace(input.Name) == "" {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "name", Message: "name is required", Code: "required"})
	}
	if strings.TrimSpace(input.Email) == "" {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "email", Message: "email is required", Code: "required"})
	}
	return fieldErrors
}

// toAPIUser converts a domain user into its API representation.
func toAPIUser(u *user.User) models.User {
	players := make([]models.FavoritePlayer, 0, len(u.FavoritePlayers))
	for _, p := range u.FavoritePlayers {
		players = append(players, models.FavoritePlayer{
			PlayerID:   p.PlayerID,
			PlayerName: p.PlayerName,
			TeamID:     p.TeamID,
			TeamName:   p.TeamName,
		})
	}

	teams := make([]models.FavoriteTeam, 0, len(u.FavoriteTeams))
	for _, t := range u.FavoriteTeams {
		teams = append(teams, models.FavoriteTeam{
			TeamID:   t.TeamID,
			TeamName: t.TeamName,
		})
	}

	return models.User{
		GoogleID:        u.GoogleID,
		Name:            u.Name,
		Email:           u.Email,
		Picture:         u.Picture,
		FavoritePlayers: players,
		FavoriteTeams:   teams,
		LastLogin:       models.Timestamp(u.LastLogin),
		CreatedAt:       models.Timestamp(u.CreatedAt),
	}
}
