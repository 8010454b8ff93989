// Package sports exposes read-only lookups against an upstream sports data
// API. Upstream entities are passed through as raw JSON; nothing here
// reshapes or caches them.
package sports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrPlayerNotFound indicates the upstream returned no player for an id.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrTeamNotFound indicates the upstream returned no team for an id.
	ErrTeamNotFound = errors.New("team not found")
)

// Entity is a single upstream object (player, team, event, league or sport),
// passed through untouched.
type Entity = json.RawMessage

// UpstreamError wraps a transport or decoding failure against the sports API.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("sports upstream %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Provider is the set of upstream lookups the HTTP surface depends on.
// List operations return an empty slice, never an error, when the upstream
// has no matches; single-entity lookups return a not-found error instead.
type Provider interface {
	SearchPlayers(ctx context.Context, name string) ([]Entity, error)
	GetPlayer(ctx context.Context, id string) (Entity, error)
	SearchTeams(ctx context.Context, name string) ([]Entity, error)
	GetTeam(ctx context.Context, id string) (Entity, error)
	ListTeamPlayers(ctx context.Context, teamID string) ([]Entity, error)
	NextEvents(ctx context.Context, teamID string) ([]Entity, error)
	LastEvents(ctx context.Context, teamID string) ([]Entity, error)
	ListLeagues(ctx context.Context, sport string) ([]Entity, error)
	ListLeagueTeams(ctx context.Context, league string) ([]Entity, error)
	ListSports(ctx context.Context) ([]Entity, error)
	UpcomingLeagueEvents(ctx context.Context, leagueID string) ([]Entity, error)
}
