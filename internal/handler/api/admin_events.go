package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/fhuszti/showcase-ms-go/internal/api_context"
	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/usecase/event"
)

type EventRequest struct {
	Title    string    `json:"title" validate:"required,max=200"`
	Location string    `json:"location" validate:"required,max=200"`
	StartsAt time.Time `json:"starts_at" validate:"required"`
	EndsAt   time.Time `json:"ends_at" validate:"required"`
	IsActive bool      `json:"is_active"`
}

func CreateEventHandler(svc port.EventManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EventRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		e, err := svc.CreateEvent(r.Context(), port.EventInput{
			Title:    req.Title,
			Location: req.Location,
			StartsAt: req.StartsAt,
			EndsAt:   req.EndsAt,
			IsActive: req.IsActive,
		})
		if err != nil {
			if errors.Is(err, event.ErrInvalidSchedule) {
				WriteError(w, http.StatusBadRequest, err.Error(), nil)
				return
			}
			writeUsecaseError(w, "could not create event", err)
			return
		}

		RespondJSON(w, http.StatusCreated, e)
		logger.Infof(r.Context(), "✅  Successfully created event #%s", e.ID)
	}
}

func DeleteEventHandler(svc port.EventManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if err := svc.DeleteEvent(r.Context(), id); err != nil {
			writeUsecaseError(w, "could not delete event #"+id.String(), err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Infof(r.Context(), "✅  Successfully deleted event #%s", id)
	}
}
