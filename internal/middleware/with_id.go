package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fhuszti/showcase-ms-go/internal/api_context"
	"github.com/fhuszti/showcase-ms-go/internal/handler/api"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

// WithID parses the {id} route param of admin record routes and stores it in
// the request context. The nil UUID never names a record.
func WithID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := chi.URLParam(r, "id")
			if raw == "" {
				api.WriteError(w, http.StatusBadRequest, "ID is required", nil)
				return
			}
			id, err := uuid.Parse(raw)
			if err != nil || id.IsNil() {
				api.WriteError(w, http.StatusBadRequest, fmt.Sprintf("ID %q is not a valid UUID", raw), nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(api_context.WithID(r.Context(), id)))
		})
	}
}
