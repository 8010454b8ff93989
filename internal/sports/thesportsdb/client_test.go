package thesportsdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsfollow/sportsfollow/internal/sports"
	"github.com/sportsfollow/sportsfollow/internal/sports/thesportsdb"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *thesportsdb.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return thesportsdb.NewClient(thesportsdb.ClientConfig{
		APIKey:  "testkey",
		BaseURL: server.URL,
	})
}

func TestClient_SearchPlayers(t *testing.T) {
	var gotPath, gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("p")
		w.Write([]byte(`{"player":[{"idPlayer":"1","strPlayer":"Lionel Messi"},{"idPlayer":"2","strPlayer":"Leo Baptistao"}]}`))
	})

	players, err := client.SearchPlayers(context.Background(), "Leo")
	require.NoError(t, err)

	assert.Equal(t, "/testkey/searchplayers.php", gotPath)
	assert.Equal(t, "Leo", gotQuery)
	require.Len(t, players, 2)
	assert.JSONEq(t, `{"idPlayer":"1","strPlayer":"Lionel Messi"}`, string(players[0]))
}

func TestClient_SearchPlayers_NullEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"player":null}`))
	})

	players, err := client.SearchPlayers(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, players)
	assert.Empty(t, players)
}

func TestClient_GetPlayer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/testkey/lookupplayer.php", r.URL.Path)
		assert.Equal(t, "34145937", r.URL.Query().Get("id"))
		w.Write([]byte(`{"players":[{"idPlayer":"34145937","strPlayer":"Harry Kane"}]}`))
	})

	player, err := client.GetPlayer(context.Background(), "34145937")
	require.NoError(t, err)
	assert.JSONEq(t, `{"idPlayer":"34145937","strPlayer":"Harry Kane"}`, string(player))
}

func TestClient_GetPlayer_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"players":null}`))
	})

	_, err := client.GetPlayer(context.Background(), "0")
	assert.ErrorIs(t, err, sports.ErrPlayerNotFound)
}

func TestClient_GetTeam_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"teams":null}`))
	})

	_, err := client.GetTeam(context.Background(), "0")
	assert.ErrorIs(t, err, sports.ErrTeamNotFound)
}

func TestClient_LastEvents_ResultsField(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/testkey/eventslast.php", r.URL.Path)
		w.Write([]byte(`{"results":[{"idEvent":"9"}]}`))
	})

	events, err := client.LastEvents(context.Background(), "133604")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.JSONEq(t, `{"idEvent":"9"}`, string(events[0]))
}

func TestClient_LastEvents_EventsFallback(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"results":null,"events":[{"idEvent":"10"}]}`))
	})

	events, err := client.LastEvents(context.Background(), "133604")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.JSONEq(t, `{"idEvent":"10"}`, string(events[0]))
}

func TestClient_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.SearchTeams(context.Background(), "Arsenal")
	var upstreamErr *sports.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, "search teams", upstreamErr.Op)
}

func TestClient_DecodeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := client.ListSports(context.Background())
	var upstreamErr *sports.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
}
