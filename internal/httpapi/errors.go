package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/huangsam/attribution/internal/contract"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Detail string `json:"detail"`
}

// statusFor maps an error onto its HTTP status and client facing detail.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, contract.ErrNoData):
		return http.StatusNotFound, "No journeys found. Please generate sample data first."
	case errors.Is(err, contract.ErrInvalidModel):
		return http.StatusBadRequest, "Invalid model name"
	case errors.Is(err, contract.ErrJourneyNotFound):
		return http.StatusNotFound, "Journey not found"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// writeJSON writes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDetail writes an error response with a fixed detail message.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorBody{Detail: detail})
}

// writeError logs unexpected failures and writes the mapped response.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.log.WithError(err).WithField("request_id", RequestIDFrom(r.Context())).Error("request failed")
	}
	writeDetail(w, status, detail)
}
