package sports

import "context"

// DefaultLeagueID is the league queried for upcoming matches when no team is
// given (English Premier League in TheSportsDB's numbering).
const DefaultLeagueID = "4328"

// Service answers match queries over a Provider.
type Service struct {
	provider Provider
}

// NewService creates a new sports service.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// UpcomingMatches returns the next scheduled events. With a team id it asks
// for that team's fixtures; without one it falls back to the default league's
// schedule.
func (s *Service) UpcomingMatches(ctx context.Context, teamID string) ([]Entity, error) {
	if teamID == "" {
		return s.provider.UpcomingLeagueEvents(ctx, DefaultLeagueID)
	}
	return s.provider.NextEvents(ctx, teamID)
}
