package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Service provides user profile and favorites operations.
type Service struct {
	repo Repository
}

// NewService creates a new user service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SyncInput holds the profile fields supplied by the client on sign-in.
type SyncInput struct {
	GoogleID string
	Name     string
	Email    string
	Picture  string
}

// SyncProfile creates or updates a user keyed on the Google ID.
// An existing user's name, email and picture are overwritten and the
// last-login timestamp refreshed; favorite lists are left untouched.
// The returned flag reports whether a new user was created.
func (s *Service) SyncProfile(ctx context.Context, in SyncInput) (*User, bool, error) {
	if strings.TrimSpace(in.GoogleID) == "" || strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" {
		return nil, false, fmt.Errorf("%w: google_id, name and email are required", ErrInvalidInput)
	}

	existing, err := s.repo.Get(ctx, in.GoogleID)
	if err != nil {
		if !errors.Is(err, ErrUserNotFound) {
			return nil, false, err
		}

		created := NewUser(in.GoogleID, in.Name, in.Email, in.Picture)
		if err := s.repo.Create(ctx, created); err != nil {
			return nil, false, err
		}
		return created, true, nil
	}

	existing.Name = in.Name
	existing.Email = in.Email
	existing.Picture = in.Picture
	existing.LastLogin = time.Now()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, false, err
	}

	return existing, false, nil
}

// GetProfile retrieves a user by Google ID. Reads have no side effects.
func (s *Service) GetProfile(ctx context.Context, googleID string) (*User, error) {
	return s.repo.Get(ctx, googleID)
}

// AddFavoritePlayer appends a player to the user's favorites.
// Adding a player whose id is already present fails with
// ErrPlayerAlreadyFavorite and leaves the stored list unchanged.
func (s *Service) AddFavoritePlayer(ctx context.Context, googleID string, fav FavoritePlayer) (*User, error) {
	if strings.TrimSpace(fav.PlayerID) == "" || strings.TrimSpace(fav.PlayerName) == "" {
		return nil, fmt.Errorf("%w: player_id and player_name are required", ErrInvalidInput)
	}

	u, err := s.repo.Get(ctx, googleID)
	if err != nil {
		return nil, err
	}

	if u.HasFavoritePlayer(fav.PlayerID) {
		return nil, ErrPlayerAlreadyFavorite
	}

	u.FavoritePlayers = append(u.FavoritePlayers, fav)

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// AddFavoriteTeam appends a team to the user's favorites, unique on team id.
func (s *Service) AddFavoriteTeam(ctx context.Context, googleID string, fav FavoriteTeam) (*User, error) {
	if strings.TrimSpace(fav.TeamID) == "" || strings.TrimSpace(fav.TeamName) == "" {
		return nil, fmt.Errorf("%w: team_id and team_name are required", ErrInvalidInput)
	}

	u, err := s.repo.Get(ctx, googleID)
	if err != nil {
		return nil, err
	}

	if u.HasFavoriteTeam(fav.TeamID) {
		return nil, ErrTeamAlreadyFavorite
	}

	u.FavoriteTeams = append(u.FavoriteTeams, fav)

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// RemoveFavoritePlayer removes every entry matching playerID from the user's
// favorites. Removing an absent id is a no-op, not an error.
func (s *Service) RemoveFavoritePlayer(ctx context.Context, googleID, playerID string) (*User, error) {
	u, err := s.repo.Get(ctx, googleID)
	if err != nil {
		return nil, err
	}

	kept := u.FavoritePlayers[:0]
	for _, p := range u.FavoritePlayers {
		if p.PlayerID != playerID {
			kept = append(kept, p)
		}
	}
	u.FavoritePlayers = kept

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// RemoveFavoriteTeam removes every entry matching teamID from the user's
// favorites, idempotently.
func (s *Service) RemoveFavoriteTeam(ctx context.Context, googleID, teamID string) (*User, error) {
	u, err := s.repo.Get(ctx, googleID)
	if err != nil {
		return nil, err
	}

	kept := u.FavoriteTeams[:0]
	for _, t := range u.FavoriteTeams {
		if t.TeamID != teamID {
			kept = append(kept, t)
		}
	}
	u.FavoriteTeams = kept

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}
