package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"ledgerview/internal/chart"
	"ledgerview/internal/core"
	"ledgerview/internal/log"
	"ledgerview/internal/present"
)

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to a status code, logs it and writes a JSON body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	logger := log.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "Request failed", log.FieldError, err)
	} else {
		logger.WarnContext(r.Context(), "Request rejected", log.FieldError, err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), RequestID: log.RequestID(r.Context())})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrMalformedDate):
		return http.StatusUnprocessableEntity
	case errors.Is(err, present.ErrUnknownColumn),
		errors.Is(err, core.ErrInvalidPrecision),
		errors.Is(err, chart.ErrUnknownKind):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
