package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/validation"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, status int, msg string, err error) {
	ctx := context.Background()
	if err != nil {
		logger.Errorf(ctx, "❌  %s: %v", msg, err)
	} else {
		logger.Error(ctx, "❌  "+msg)
	}
	w.Header().Set("Cache-Control", "no-store")
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to encode JSON response: %v", err)
	}
}

func RespondRawJSON(w http.ResponseWriter, status int, raw []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(raw); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to write JSON payload: %v", err)
	}
}

// decodeAndValidate reads a JSON body into dst and validates it. On failure it
// writes the 400 response itself and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request payload", err)
		return false
	}

	if errs := validation.ValidateStruct(dst); errs != nil {
		errsMap := validation.ErrorsToMap(errs)
		logger.Warnf(r.Context(), "❌  Validation failed: %v", errsMap)
		w.Header().Set("Cache-Control", "no-store")
		RespondJSON(w, http.StatusBadRequest, errsMap)
		return false
	}
	return true
}

// writeUsecaseError maps domain errors to a status; anything else is a 500.
func writeUsecaseError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, port.ErrNotFound), errors.Is(err, port.ErrObjectNotFound):
		WriteError(w, http.StatusNotFound, msg+": not found", err)
	case errors.Is(err, port.ErrInvalidState), errors.Is(err, port.ErrDuplicate):
		WriteError(w, http.StatusConflict, msg+": "+err.Error(), err)
	default:
		WriteError(w, http.StatusInternalServerError, msg, err)
	}
}

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
