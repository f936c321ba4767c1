package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/railbook/railbook/internal/core/domain"
	"github.com/railbook/railbook/internal/core/services"
)

type bookingResponse struct {
	PNR           int    `json:"pnr"`
	TrainNumber   int    `json:"train_number"`
	TrainName     string `json:"train_name"`
	PassengerName string `json:"passenger_name"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	Berth         string `json:"berth"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	JourneyDate   string `json:"journey_date"`
	BookingDate   string `json:"booking_date"`
	Status        string `json:"status"`
}

func toBookingResponse(b domain.Booking) bookingResponse {
	return bookingResponse{
		PNR:           b.PNR,
		TrainNumber:   b.TrainNumber,
		TrainName:     b.TrainName,
		PassengerName: b.PassengerName,
		Age:           b.Age,
		Gender:        string(b.Gender),
		Berth:         string(b.Berth),
		Email:         b.Email,
		Phone:         b.Phone,
		JourneyDate:   b.JourneyDate.Format(time.DateOnly),
		BookingDate:   b.BookingDate.Format(time.DateOnly),
		Status:        string(b.Status),
	}
}

type BookingHandler struct {
	booking *services.BookingService
	query   *services.QueryService
}

func NewBookingHandler(booking *services.BookingService, query *services.QueryService) *BookingHandler {
	return &BookingHandler{booking: booking, query: query}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req services.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	booking, err := h.booking.CreateBooking(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toBookingResponse(*booking))
}

// GetBooking handles GET /api/bookings/{pnr}.
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	pnr, err := strconv.Atoi(mux.Vars(r)["pnr"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "pnr must be an integer")
		return
	}

	booking, err := h.query.FindBookingByReference(r.Context(), pnr)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toBookingResponse(*booking))
}

// SearchBookings handles GET /api/bookings?passenger=name.
func (h *BookingHandler) SearchBookings(w http.ResponseWriter, r *http.Request) {
	passenger := r.URL.Query().Get("passenger")
	if passenger == "" {
		respondError(w, http.StatusBadRequest, "passenger query parameter is required")
		return
	}

	bookings := h.query.FindBookingsByPassengerName(r.Context(), passenger)

	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}

	respondJSON(w, http.StatusOK, out)
}

// CancelBooking handles POST /api/bookings/{pnr}/cancel.
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	pnr, err := strconv.Atoi(mux.Vars(r)["pnr"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "pnr must be an integer")
		return
	}

	booking, err := h.booking.CancelBooking(r.Context(), pnr)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toBookingResponse(*booking))
}

// Register mounts the JSON API under /api.
func Register(r *mux.Router, trains *TrainHandler, bookings *BookingHandler) {
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/trains", trains.ListTrains).Methods(http.MethodGet)
	api.HandleFunc("/trains/search", trains.SearchTrains).Methods(http.MethodGet)
	api.HandleFunc("/trains/{number:[0-9]+}", trains.GetTrain).Methods(http.MethodGet)
	api.HandleFunc("/trains/{number:[0-9]+}/availability", trains.GetAvailability).Methods(http.MethodGet)

	api.HandleFunc("/bookings", bookings.CreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings", bookings.SearchBookings).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{pnr:[0-9]+}", bookings.GetBooking).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{pnr:[0-9]+}/cancel", bookings.CancelBooking).Methods(http.MethodPost)
}
