package models

// FavoritePlayer is a favorite-player entry in a user profile.
type FavoritePlayer struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	TeamID     string `json:"team_id,omitempty"`
	TeamName   string `json:"team_name,omitempty"`
}

// FavoriteTeam is a favorite-team entry in a user profile.
type FavoriteTeam struct {
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`
}

// User is the API representation of a user profile.
type User struct {
	GoogleID        string           `json:"google_id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Picture         string           `json:"picture,omitempty"`
	FavoritePlayers []FavoritePlayer `json:"favorite_players"`
	FavoriteTeams   []FavoriteTeam   `json:"favorite_teams"`
	LastLogin       Timestamp        `json:"last_login"`
	CreatedAt       Timestamp        `json:"created_at"`
}

// UserSyncRequest is the body for POST /api/users.
type UserSyncRequest struct {
	GoogleID string `json:"google_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Picture  string `json:"picture"`
}

// FavoritePlayerRequest is the body for PUT /api/users/{googleId}/players.
type FavoritePlayerRequest struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	TeamID     string `json:"team_id"`
	TeamName   string `json:"team_name"`
}

// FavoriteTeamRequest is the body for PUT /api/users/{googleId}/teams.
type FavoriteTeamRequest struct {
	TeamID   string `json:"team_id"`
	TeamName string `json:"team_name"`
}
