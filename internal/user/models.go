// Package user provides user profiles with favorite players and teams.
//
// A user is keyed by the Google account ID supplied by the mobile client;
// there is no internal surrogate identifier. Favorite players and teams are
// embedded in the user record as ordered lists, so every mutation persists
// the whole document and single-document atomicity is all the store has to
// guarantee. Membership checks are linear scans; the lists are expected to
// hold tens of entries, not thousands.
package user

import (
	"errors"
	"time"
)

// Errors returned by the user service and repositories.
var (
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidInput indicates a missing or empty required field.
	ErrInvalidInput = errors.New("invalid input")

	ErrPlayerAlreadyFavorite = errors.New("player already in favorites")
	ErrTeamAlreadyFavorite   = errors.New("team already in favorites")
)

// FavoritePlayer is a favorite-player entry embedded in a user record.
// It has no identity of its own; uniqueness is enforced on PlayerID within
// one user's list. The JSON tags double as the JSONB storage shape.
type FavoritePlayer struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	TeamID     string `json:"team_id,omitempty"`
	TeamName   string `json:"team_name,omitempty"`
}

// FavoriteTeam is a favorite-team entry embedded in a user record,
// unique on TeamID within one user's list.
type FavoriteTeam struct {
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`
}

// User represents a user profile synced from the mobile client.
type User struct {
	// GoogleID is the external identity and is globally unique.
	GoogleID string

	Name    string
	Email   string
	Picture string

	// FavoritePlayers and FavoriteTeams are ordered; new entries append.
	FavoritePlayers []FavoritePlayer
	FavoriteTeams   []FavoriteTeam

	LastLogin time.Time
	CreatedAt time.Time
}

// NewUser returns a user created on first profile sync, with empty
// favorite lists and current timestamps.
func NewUser(googleID, name, email, picture string) *User {
	now := time.Now()
	return &User{
		GoogleID:        googleID,
		Name:            name,
		Email:           email,
		Picture:         picture,
		FavoritePlayers: []FavoritePlayer{},
		FavoriteTeams:   []FavoriteTeam{},
		LastLogin:       now,
		CreatedAt:       now,
	}
}

// HasFavoritePlayer reports whether playerID is already in the user's list.
func (u *User) HasFavoritePlayer(playerID string) bool {
	for _, p := range u.FavoritePlayers {
		if p.PlayerID == playerID {
			return true
		}
	}
	return false
}

// HasFavoriteTeam reports whether teamID is already in the user's list.
func (u *User) HasFavoriteTeam(teamID string) bool {
	for _, t := range u.FavoriteTeams {
		if t.TeamID == teamID {
			return true
		}
	}
	return false
}
