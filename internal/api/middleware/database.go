package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/sportsfollow/sportsfollow/internal/api/models"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// pingTimeout bounds the readiness probe so a hung store cannot stall
// every request for its full deadline.
const pingTimeout = time.Second

// RequireDatabase gates a route group on store connectivity. Requests are
// rejected with 503 when the store is down or was never connected, before
// any handler logic runs.
func RequireDatabase(pinger Pinger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if pinger == nil {
				unavailable(w, r)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
			defer cancel()

			if err := pinger.Ping(ctx); err != nil {
				unavailable(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func unavailable(w http.ResponseWriter, r *http.Request) {
	problem := models.NewServiceUnavailable(GetRequestID(r.Context()), "database connection is not ready")
	problem.Instance = r.URL.Path
	problem.Write(w)
}
