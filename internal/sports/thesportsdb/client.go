// Package thesportsdb implements the sports.Provider interface against the
// TheSportsDB v1 JSON API.
package thesportsdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sportsfollow/sportsfollow/internal/provider/resilience"
	"github.com/sportsfollow/sportsfollow/internal/sports"
)

const (
	// ProviderName identifies this sports data provider.
	ProviderName = "thesportsdb"

	// DefaultBaseURL is the TheSportsDB v1 API base URL. The API key is a
	// path segment appended below it.
	DefaultBaseURL = "https://www.thesportsdb.com/api/v1/json"

	// DefaultAPIKey is TheSportsDB's free shared key.
	DefaultAPIKey = "3"
)

// ClientConfig holds configuration for the TheSportsDB client.
type ClientConfig struct {
	// APIKey is the TheSportsDB API key (optional, defaults to the free key).
	APIKey string

	// BaseURL is the API base URL (optional).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a circuit-breaker protected client without retries.
	HTTPClient *resilience.Client

	// Timeout for upstream requests (default: 10s).
	Timeout time.Duration

	// Logger for client operations.
	Logger zerolog.Logger
}

// ConfigFromEnv builds a ClientConfig from SPORTSDB_API_KEY.
func ConfigFromEnv() ClientConfig {
	return ClientConfig{APIKey: os.Getenv("SPORTSDB_API_KEY")}
}

// Client is a TheSportsDB API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new TheSportsDB client.
func NewClient(cfg ClientConfig) *Client {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = DefaultAPIKey
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		httpClient = resilience.NewClient(resilience.ClientConfig{
			Name:    ProviderName,
			Timeout: timeout,
		})
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// SearchPlayers searches players by name.
func (c *Client) SearchPlayers(ctx context.Context, name string) ([]sports.Entity, error) {
	env, err := c.fetch(ctx, "search players", "searchplayers.php", url.Values{"p": {name}})
	if err != nil {
		return nil, err
	}
	return listField(env, "player"), nil
}

// GetPlayer looks up a single player by id.
func (c *Client) GetPlayer(ctx context.Context, id string) (sports.Entity, error) {
	env, err := c.fetch(ctx, "lookup player", "lookupplayer.php", url.Values{"id": {id}})
	if err != nil {
		return nil, err
	}
	players := listField(env, "players")
	if len(players) == 0 {
		return nil, sports.ErrPlayerNotFound
	}
	return players[0], nil
}

// SearchTeams searches teams by name.
func (c *Client) SearchTeams(ctx context.Context, name string) ([]sports.Entity, error) {
	env, err := c.fetch(ctx, "search teams", "searchteams.php", url.Values{"t": {name}})
	if err != nil {
		return nil, err
	}
	return listField(env, "teams"), nil
}

// GetTeam looks up a single team by id.
func (c *Client) GetTeam(ctx context.Context, id string) (sports.Entity, error) {
	env, err := c.fetch(ctx, "lookup team", "lookupteam.php", url.Values{"id": {id}})
	if err != nil {
		return nil, err
	}
	teams := listField(env, "teams")
	if len(teams) == 0 {
		return nil, sports.ErrTeamNotFound
	}
	return teams[0], nil
}

// ListTeamPlayers lists the players on a team's roster.
func (c *Client) ListTeamPlayers(ctx context.Context, teamID string) ([]sports.Entity, error) {
	env, err := c.fetch(ctx, "list team players", "lookup_all_players.php", url.Values{"id": {teamID}})
	if err != nil {
		return nil, err
	}
	return listField(env, "player"), nil
}

// NextEvents lists a team's next scheduled events.
func (c *Client) NextEvents(ctx context.Context, teamID string) ([]sports.Entity, error) {
	env, err := c.fetch(ctx, "next events", "eventsnext.php", url.Values{"id": {teamID}})
	if err != nil {
		return nil, err
	}
	return listField(env, "events"), nil
}

// LastEvents lists a team's most recent results. The upstream serves these
// under "results" on most plans and "events" on some; both are accepted.
func (c *Client) LastEvents(ctx context.Context, teamID string) ([]sports.Entity, error) {
	env, err := c.fetch(ctx, "last events", "eventslast.php", url.Values{"id": {teamID}})
	if err != nil {
		return nil, err
	}
	if results, ok := env["results"]; ok && results != nil {
		return results, nil
	}
	return listField(env, "events"), nil
}

// ListLeagues lists leagues for a sport.
func (c *Client) ListLeagues(ctx context.Context, sport string) ([]sports.Entity, error) {
	env, err := c.fetch(ctx, "list leagues", "all_leagues.php", url.Values{"s": {sport}})
	if err != nil {
		return nil, err
	}
	return listField(env, "leagues"), nil
}

// ListLeagueTeams lists the teams in a league.
func (c *Client) ListLeagueTeams(ctx context.Context, league string) ([]sports.Entity, error) {
	env, err := c.fetch(ctx, "list league teams", "search_all_teams.php", url.Values{"l": {league}})
	if err != nil {
		return nil, err
	}
	return listField(env, "teams"), nil
}

// ListSports lists all sports known to the upstream.
func (c *Client) ListSports(ctx context.Context) ([]sports.Entity, error) {
	env, err := c.fetch(ctx, "list sports", "all_sports.php", nil)
	if err != nil {
		return nil, err
	}
	return listField(env, "sports"), nil
}

// UpcomingLeagueEvents lists the next scheduled events in a league.
func (c *Client) UpcomingLeagueEvents(ctx context.Context, leagueID string) ([]sports.Entity, error) {
	env, err := c.fetch(ctx, "upcoming league events", "eventsnextleague.php", url.Values{"id": {leagueID}})
	if err != nil {
		return nil, err
	}
	return listField(env, "events"), nil
}

// fetch performs a GET against one upstream endpoint and decodes the
// envelope. Every TheSportsDB response is a single object whose fields are
// arrays of entities (null when there are no matches).
func (c *Client) fetch(ctx context.Context, op, endpoint string, params url.Values) (map[string][]sports.Entity, error) {
	reqURL := fmt.Sprintf("%s/%s/%s", c.baseURL, c.apiKey, endpoint)
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, &sports.UpstreamError{Op: op, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &sports.UpstreamError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &sports.UpstreamError{Op: op, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	var env map[string][]sports.Entity
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &sports.UpstreamError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
	}

	return env, nil
}

// listField returns the named envelope field, or an empty slice when the
// field is absent or null.
func listField(env map[string][]sports.Entity, field string) []sports.Entity {
	if entities := env[field]; entities != nil {
		return entities
	}
	return []sports.Entity{}
}

// Ensure Client implements the Provider interface.
var _ sports.Provider = (*Client)(nil)
