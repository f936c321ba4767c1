// Package web renders the HTML pages of the booking demo: home, route
// search, the booking form, booking lookup and the two-step cancellation
// flow. It sits on the same services as the JSON API and holds no state of
// its own.
package web

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/railbook/railbook/internal/core/domain"
	"github.com/railbook/railbook/internal/core/services"
)

//go:embed templates/*
var templates embed.FS

type Web struct {
	booking *services.BookingService
	query   *services.QueryService
	pages   map[string]*template.Template
}

func New(booking *services.BookingService, query *services.QueryService) *Web {
	pages := map[string]*template.Template{}
	for _, name := range []string{"home", "search", "book", "bookings", "cancel"} {
		pages[name] = template.Must(template.ParseFS(templates,
			"templates/layout.html", "templates/"+name+".html"))
	}

	return &Web{booking: booking, query: query, pages: pages}
}

func (w *Web) Register(r *mux.Router) {
	r.HandleFunc("/", w.Home).Methods(http.MethodGet)
	r.HandleFunc("/search", w.Search).Methods(http.MethodGet)
	r.HandleFunc("/book", w.BookForm).Methods(http.MethodGet)
	r.HandleFunc("/book", w.BookSubmit).Methods(http.MethodPost)
	r.HandleFunc("/bookings", w.Bookings).Methods(http.MethodGet)
	r.HandleFunc("/cancel", w.CancelForm).Methods(http.MethodGet)
	r.HandleFunc("/cancel", w.CancelSubmit).Methods(http.MethodPost)
}

func (w *Web) render(rw http.ResponseWriter, page string, data any) {
	rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := w.pages[page].ExecuteTemplate(rw, "layout", data); err != nil {
		log.Printf("Failed to render %s page: %v", page, err)
	}
}

type trainCard struct {
	domain.Train
	AvailableSeats int
}

func (w *Web) trainCards(r *http.Request, trains []domain.Train) []trainCard {
	cards := make([]trainCard, 0, len(trains))
	for _, t := range trains {
		cards = append(cards, trainCard{
			Train:          t,
			AvailableSeats: w.query.AvailableSeats(r.Context(), t.Number),
		})
	}
	return cards
}

type bookingView struct {
	domain.Booking
	JourneyDateText string
	BookingDateText string
	StatusText      string
}

func toBookingView(b domain.Booking) bookingView {
	status := "Confirmed"
	if b.Cancelled {
		status = "Cancelled"
	}

	return bookingView{
		Booking:         b,
		JourneyDateText: b.JourneyDate.Format(time.DateOnly),
		BookingDateText: b.BookingDate.Format(time.DateOnly),
		StatusText:      status,
	}
}

// Home shows every train in the catalog with its live availability.
func (w *Web) Home(rw http.ResponseWriter, r *http.Request) {
	w.render(rw, "home", struct {
		Trains []trainCard
	}{w.trainCards(r, w.query.ListTrains(r.Context()))})
}

// Search renders the route search form and, once source and destination are
// submitted, the matching trains. No matches is a message, not an error
// page.
func (w *Web) Search(rw http.ResponseWriter, r *http.Request) {
	source := r.URL.Query().Get("source")
	destination := r.URL.Query().Get("destination")

	data := struct {
		Source      string
		Destination string
		Searched    bool
		Results     []trainCard
	}{Source: source, Destination: destination}

	if source != "" && destination != "" {
		data.Searched = true
		data.Results = w.trainCards(r, w.query.SearchRoute(r.Context(), source, destination))
	}

	w.render(rw, "search", data)
}

type bookPageData struct {
	Trains   []trainCard
	Selected int
	Today    string
	Error    string
	Booked   *bookingView
}

// BookForm renders the passenger details form, preselecting a train when
// the request came from a train card's Book link.
func (w *Web) BookForm(rw http.ResponseWriter, r *http.Request) {
	selected, _ := strconv.Atoi(r.URL.Query().Get("train"))

	w.render(rw, "book", bookPageData{
		Trains:   w.trainCards(r, w.query.ListTrains(r.Context())),
		Selected: selected,
		Today:    time.Now().Format(time.DateOnly),
	})
}

// BookSubmit creates the booking and renders either the confirmation with
// the new PNR or the form again with the specific failure message.
func (w *Web) BookSubmit(rw http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(rw, "bad form data", http.StatusBadRequest)
		return
	}

	trainNumber, _ := strconv.Atoi(r.PostFormValue("train_number"))
	age, _ := strconv.Atoi(r.PostFormValue("age"))

	booking, err := w.booking.CreateBooking(r.Context(), services.CreateBookingRequest{
		TrainNumber:   trainNumber,
		PassengerName: r.PostFormValue("passenger_name"),
		Age:           age,
		Gender:        r.PostFormValue("gender"),
		Berth:         r.PostFormValue("berth"),
		Email:         r.PostFormValue("email"),
		Phone:         r.PostFormValue("phone"),
		JourneyDate:   r.PostFormValue("journey_date"),
	})

	data := bookPageData{
		Trains:   w.trainCards(r, w.query.ListTrains(r.Context())),
		Selected: trainNumber,
		Today:    time.Now().Format(time.DateOnly),
	}

	if err != nil {
		data.Error = err.Error()
	} else {
		view := toBookingView(*booking)
		data.Booked = &view
	}

	w.render(rw, "book", data)
}

// Bookings renders the lookup page, searching by PNR or by passenger name
// depending on which field was filled in.
func (w *Web) Bookings(rw http.ResponseWriter, r *http.Request) {
	pnrText := r.URL.Query().Get("pnr")
	name := r.URL.Query().Get("name")

	data := struct {
		PNR      string
		Name     string
		Searched bool
		NotFound bool
		Results  []bookingView
	}{PNR: pnrText, Name: name}

	switch {
	case pnrText != "":
		data.Searched = true
		pnr, err := strconv.Atoi(pnrText)
		if err != nil {
			data.NotFound = true
			break
		}
		booking, err := w.query.FindBookingByReference(r.Context(), pnr)
		if err != nil {
			data.NotFound = true
			break
		}
		data.Results = []bookingView{toBookingView(*booking)}
	case name != "":
		data.Searched = true
		for _, b := range w.query.FindBookingsByPassengerName(r.Context(), name) {
			data.Results = append(data.Results, toBookingView(b))
		}
		data.NotFound = len(data.Results) == 0
	}

	w.render(rw, "bookings", data)
}

type cancelPageData struct {
	PNR       string
	Booking   *bookingView
	Cancelled *bookingView
	Error     string
}

// CancelForm is the first step of cancellation: it shows the booking in its
// confirmed state and asks for an explicit confirmation before anything is
// changed.
func (w *Web) CancelForm(rw http.ResponseWriter, r *http.Request) {
	pnrText := r.URL.Query().Get("pnr")

	data := cancelPageData{PNR: pnrText}

	if pnrText != "" {
		pnr, err := strconv.Atoi(pnrText)
		if err != nil {
			data.Error = "PNR must be a number"
			w.render(rw, "cancel", data)
			return
		}

		booking, err := w.query.FindBookingByReference(r.Context(), pnr)
		switch {
		case err != nil:
			data.Error = "No booking found with this PNR number"
		case booking.IsCancelled():
			data.Error = "This ticket is already cancelled"
		default:
			view := toBookingView(*booking)
			data.Booking = &view
		}
	}

	w.render(rw, "cancel", data)
}

// CancelSubmit is the second step: the confirmed POST that actually cancels.
func (w *Web) CancelSubmit(rw http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(rw, "bad form data", http.StatusBadRequest)
		return
	}

	pnrText := r.PostFormValue("pnr")
	data := cancelPageData{PNR: pnrText}

	pnr, err := strconv.Atoi(pnrText)
	if err != nil {
		data.Error = "PNR must be a number"
		w.render(rw, "cancel", data)
		return
	}

	booking, err := w.booking.CancelBooking(r.Context(), pnr)
	if err != nil {
		data.Error = err.Error()
		w.render(rw, "cancel", data)
		return
	}

	view := toBookingView(*booking)
	data.Cancelled = &view
	w.render(rw, "cancel", data)
}
