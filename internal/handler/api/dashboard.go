package api

import (
	"context"
	"net/http"

	"github.com/fhuszti/showcase-ms-go/internal/port"
)

// DashboardHandler serves the admin counters. Responses are never cached.
func DashboardHandler(svc port.DashboardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.GetDashboard(r.Context())
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "could not load dashboard", err)
			return
		}
		w.Header().Set("Cache-Control", "no-store")
		RespondJSON(w, http.StatusOK, out)
	}
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports whether the document store answers.
func HealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			WriteError(w, http.StatusServiceUnavailable, "database unreachable", err)
			return
		}
		w.Header().Set("Cache-Control", "no-store")
		RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
