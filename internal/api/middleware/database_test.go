package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sportsfollow/sportsfollow/internal/api/middleware"
)

type fakePinger struct {
	err error
}

func (p *fakePinger) Ping(_ context.Context) error {
	return p.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireDatabase_PassesWhenConnected(t *testing.T) {
	handler := middleware.RequireDatabase(&fakePinger{})(okHandler())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/u1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireDatabase_RejectsWhenDown(t *testing.T) {
	handler := middleware.RequireDatabase(&fakePinger{err: errors.New("connection refused")})(okHandler())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/u1", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))
}

func TestRequireDatabase_RejectsWhenNeverConnected(t *testing.T) {
	handler := middleware.RequireDatabase(nil)(okHandler())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/u1", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
