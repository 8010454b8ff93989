package sports_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsfollow/sportsfollow/internal/sports"
)

type fakeProvider struct {
	sports.Provider

	nextEventsTeam string
	leagueQueried  string
}

func (p *fakeProvider) NextEvents(_ context.Context, teamID string) ([]sports.Entity, error) {
	p.nextEventsTeam = teamID
	return []sports.Entity{sports.Entity(`{"idEvent":"1"}`)}, nil
}

func (p *fakeProvider) UpcomingLeagueEvents(_ context.Context, leagueID string) ([]sports.Entity, error) {
	p.leagueQueried = leagueID
	return []sports.Entity{sports.Entity(`{"idEvent":"2"}`)}, nil
}

func TestService_UpcomingMatches_DefaultLeague(t *testing.T) {
	provider := &fakeProvider{}
	svc := sports.NewService(provider)

	events, err := svc.UpcomingMatches(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, sports.DefaultLeagueID, provider.leagueQueried)
	assert.Empty(t, provider.nextEventsTeam)
}

func TestService_UpcomingMatches_ByTeam(t *testing.T) {
	provider := &fakeProvider{}
	svc := sports.NewService(provider)

	events, err := svc.UpcomingMatches(context.Background(), "133604")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "133604", provider.nextEventsTeam)
	assert.Empty(t, provider.leagueQueried)
}
