package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsfollow/sportsfollow/internal/api"
	"github.com/sportsfollow/sportsfollow/internal/api/models"
	"github.com/sportsfollow/sportsfollow/internal/device"
	"github.com/sportsfollow/sportsfollow/internal/notification"
	"github.com/sportsfollow/sportsfollow/internal/sports"
	"github.com/sportsfollow/sportsfollow/internal/user"
)

// connectedPinger simulates a healthy store.
type connectedPinger struct{}

func (connectedPinger) Ping(_ context.Context) error { return nil }

// stubGateway accepts every batch and echoes a fixed receipt.
type stubGateway struct {
	calls int
}

func (g *stubGateway) Send(_ context.Context, _ []notification.Message) (json.RawMessage, error) {
	g.calls++
	return json.RawMessage(`{"data":[{"status":"ok"}]}`), nil
}

// stubProvider serves canned upstream entities.
type stubProvider struct {
	sports.Provider
}

func (stubProvider) SearchTeams(_ context.Context, name string) ([]sports.Entity, error) {
	if name == "Arsenal" {
		return []sports.Entity{sports.Entity(`{"idTeam":"133604","strTeam":"Arsenal"}`)}, nil
	}
	return []sports.Entity{}, nil
}

func (stubProvider) GetPlayer(_ context.Context, id string) (sports.Entity, error) {
	if id == "34145937" {
		return sports.Entity(`{"idPlayer":"34145937","strPlayer":"Harry Kane"}`), nil
	}
	return nil, sports.ErrPlayerNotFound
}

func (stubProvider) UpcomingLeagueEvents(_ context.Context, leagueID string) ([]sports.Entity, error) {
	return []sports.Entity{sports.Entity(`{"idEvent":"1","idLeague":"` + leagueID + `"}`)}, nil
}

func newTestRouter() http.Handler {
	logger := zerolog.New(io.Discard)

	userService := user.NewService(user.NewInMemoryRepository())
	deviceRepo := device.NewInMemoryRepository()
	deviceService := device.NewService(deviceRepo)
	notificationService := notification.NewService(notification.ServiceConfig{
		Devices: deviceRepo,
		Gateway: &stubGateway{},
		Logger:  logger,
	})
	provider := stubProvider{}

	return api.NewRouter(api.RouterConfig{
		Logger:              logger,
		Environment:         "test",
		Pinger:              connectedPinger{},
		UserService:         userService,
		DeviceService:       deviceService,
		NotificationService: notificationService,
		SportsProvider:      provider,
		SportsService:       sports.NewService(provider),
	})
}

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_Root(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "SportsFollow API is running", w.Body.String())
}

func TestRouter_HealthCheck(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	var health models.Health
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, models.DatabaseConnected, health.Database)
	assert.Equal(t, "test", health.Environment)
}

func TestRouter_SyncUser_CreateThenUpdate(t *testing.T) {
	router := newTestRouter()

	body := `{"google_id":"u1","name":"Ada","email":"ada@example.com"}`
	w := postJSON(t, router, "/api/users", body)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/users/u1", w.Header().Get("Location"))

	var created models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "u1", created.GoogleID)
	assert.NotNil(t, created.FavoritePlayers)
	assert.Empty(t, created.FavoritePlayers)

	w = postJSON(t, router, "/api/users", `{"google_id":"u1","name":"Ada L","email":"ada@example.com"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Ada L", updated.Name)
}

func TestRouter_SyncUser_MissingFields(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/users", `{"google_id":"u1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var problem models.Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Len(t, problem.Errors, 2)
}

func TestRouter_GetUser_NotFound(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/nobody", http.NoBody))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_FavoritePlayers(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/users", `{"google_id":"u1","name":"Ada","email":"ada@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	add := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, "/api/users/u1/players",
			bytes.NewBufferString(`{"player_id":"p1","player_name":"Harry Kane","team_id":"t1","team_name":"Bayern"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w = add()
	assert.Equal(t, http.StatusOK, w.Code)

	var u models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	require.Len(t, u.FavoritePlayers, 1)
	assert.Equal(t, "p1", u.FavoritePlayers[0].PlayerID)

	// Adding the same player id again is rejected.
	w = add()
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Removing an absent id is a no-op.
	req := httptest.NewRequest(http.MethodDelete, "/api/users/u1/players/p_absent", http.NoBody)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	assert.Len(t, u.FavoritePlayers, 1)
}

func TestRouter_RegisterDevice(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/notifications/register",
		`{"token":"ExponentPushToken[abc]","userId":"u1","platform":"ios"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.DeviceRegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "ExponentPushToken[abc]", resp.Device.Token)

	w = postJSON(t, router, "/api/notifications/register",
		`{"token":"tok","userId":"u1","platform":"windows"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_SendNotification_NoDevices(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/notifications/send",
		`{"userId":"nobody","title":"Hi","body":"Hello"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_SendNotification(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/notifications/register",
		`{"token":"tok1","userId":"u1","platform":"ios"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, router, "/api/notifications/send",
		`{"userId":"u1","title":"Hi","body":"Hello"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.NotificationSendResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.JSONEq(t, `{"data":[{"status":"ok"}]}`, string(resp.Result))
}

func TestRouter_Broadcast(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/notifications/register",
		`{"token":"tok1","userId":"u1","platform":"ios"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, router, "/api/notifications/broadcast",
		`{"title":"News","body":"Kickoff soon"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.BroadcastResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Results, 1)
}

func TestRouter_SportsProxy(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sports/teams/search/Arsenal", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"idTeam":"133604","strTeam":"Arsenal"}]`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sports/players/0", http.NoBody))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_UpcomingMatches(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/matches/upcoming", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"idEvent":"1","idLeague":"4328"}]`, w.Body.String())
}

func TestRouter_DatabaseGate(t *testing.T) {
	logger := zerolog.New(io.Discard)
	provider := stubProvider{}

	// No pinger: the store was never connected.
	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		Environment:    "test",
		UserService:    user.NewService(user.NewInMemoryRepository()),
		SportsProvider: provider,
		SportsService:  sports.NewService(provider),
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/u1", http.NoBody))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	// Sports routes do not depend on the store.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/matches/upcoming", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)

	// Health answers 200 and reports the outage in the body.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))
	assert.Equal(t, http.StatusOK, w.Code)

	var health models.Health
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, models.DatabaseDisconnected, health.Database)
}
