package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/railbook/railbook/internal/core/domain"
)

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// respondServiceError maps the service error taxonomy onto HTTP statuses:
// bad input is 400, lookup misses are 404, capacity and re-cancel conflicts
// are 409. Anything else is a 500 with the detail kept out of the response.
func respondServiceError(w http.ResponseWriter, err error) {
	var verr domain.ValidationError

	switch {
	case errors.As(err, &verr):
		respondError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, domain.ErrTrainNotFound), errors.Is(err, domain.ErrBookingNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrNoSeatsAvailable), errors.Is(err, domain.ErrAlreadyCancelled):
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
