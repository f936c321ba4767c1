package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/railbook/railbook/internal/core/domain"
	"github.com/railbook/railbook/internal/core/services"
)

type trainResponse struct {
	TrainNumber int    `json:"train_number"`
	Name        string `json:"name"`
	TotalSeats  int    `json:"total_seats"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Departure   string `json:"departure"`
	Arrival     string `json:"arrival"`
	Days        string `json:"days"`
	Type        string `json:"type"`
}

func toTrainResponse(t domain.Train) trainResponse {
	return trainResponse{
		TrainNumber: t.Number,
		Name:        t.Name,
		TotalSeats:  t.TotalSeats,
		Source:      t.Source,
		Destination: t.Destination,
		Departure:   t.Departure,
		Arrival:     t.Arrival,
		Days:        t.Days,
		Type:        t.Type,
	}
}

type TrainHandler struct {
	query *services.QueryService
}

func NewTrainHandler(query *services.QueryService) *TrainHandler {
	return &TrainHandler{query: query}
}

// ListTrains handles GET /api/trains.
func (h *TrainHandler) ListTrains(w http.ResponseWriter, r *http.Request) {
	trains := h.query.ListTrains(r.Context())

	out := make([]trainResponse, 0, len(trains))
	for _, t := range trains {
		out = append(out, toTrainResponse(t))
	}

	respondJSON(w, http.StatusOK, out)
}

// GetTrain handles GET /api/trains/{number}.
func (h *TrainHandler) GetTrain(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(mux.Vars(r)["number"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "train number must be an integer")
		return
	}

	train, err := h.query.FindTrain(r.Context(), number)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toTrainResponse(*train))
}

// GetAvailability handles GET /api/trains/{number}/availability. Unknown
// trains are a 404 here even though the core treats them as zero seats.
func (h *TrainHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(mux.Vars(r)["number"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "train number must be an integer")
		return
	}

	if _, err := h.query.FindTrain(r.Context(), number); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{
		"train_number":    number,
		"available_seats": h.query.AvailableSeats(r.Context(), number),
	})
}

// SearchTrains handles GET /api/trains/search?source=&destination=.
func (h *TrainHandler) SearchTrains(w http.ResponseWriter, r *http.Request) {
	source := r.URL.Query().Get("source")
	destination := r.URL.Query().Get("destination")

	if source == "" || destination == "" {
		respondError(w, http.StatusBadRequest, "source and destination are required")
		return
	}

	trains := h.query.SearchRoute(r.Context(), source, destination)

	out := make([]trainResponse, 0, len(trains))
	for _, t := range trains {
		out = append(out, toTrainResponse(t))
	}

	respondJSON(w, http.StatusOK, out)
}
