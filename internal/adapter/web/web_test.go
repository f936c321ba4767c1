package web_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/railbook/railbook/internal/adapter/cache"
	"github.com/railbook/railbook/internal/adapter/repository/memory"
	"github.com/railbook/railbook/internal/adapter/web"
	"github.com/railbook/railbook/internal/core/services"
)

func newTestRouter() *mux.Router {
	catalog := memory.NewSeededTrainCatalog()
	store := memory.NewBookingStore()
	seq := memory.NewPNRSequence()
	noop := cache.NewNoop()

	bookingService := services.NewBookingService(catalog, store, seq, noop)
	queryService := services.NewQueryService(catalog, store, noop)

	router := mux.NewRouter()
	web.New(bookingService, queryService).Register(router)

	return router
}

func get(router *mux.Router, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func postForm(router *mux.Router, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func bookingForm() url.Values {
	return url.Values{
		"train_number":   {"10101"},
		"passenger_name": {"Aditya Prakash"},
		"age":            {"25"},
		"gender":         {"Male"},
		"berth":          {"Lower"},
		"email":          {"aditya@example.com"},
		"phone":          {"9876543210"},
		"journey_date":   {time.Now().AddDate(0, 0, 3).Format(time.DateOnly)},
	}
}

func TestHomeShowsCatalogWithAvailability(t *testing.T) {
	router := newTestRouter()

	rec := get(router, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Pune Express")
	assert.Contains(t, body, "Chennai Mail")
	assert.Contains(t, body, "Seats Available:</strong> 100")
}

func TestSearchPage(t *testing.T) {
	router := newTestRouter()

	body := get(router, "/search?source=Mumbai&destination=Pune").Body.String()
	assert.Contains(t, body, "Found 1 train(s) available")
	assert.Contains(t, body, "Pune Express")

	body = get(router, "/search?source=Mumbai&destination=Chennai").Body.String()
	assert.Contains(t, body, "No trains found for this route")
}

func TestBookingFlow(t *testing.T) {
	router := newTestRouter()

	rec := postForm(router, "/book", bookingForm())

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Booking Successful!")
	assert.Contains(t, body, "PNR Number:</strong> 1001")
}

func TestBookingFlow_ValidationMessageShown(t *testing.T) {
	router := newTestRouter()

	form := bookingForm()
	form.Set("age", "150")

	body := postForm(router, "/book", form).Body.String()
	assert.Contains(t, body, "age must be between 1 and 100")
	assert.NotContains(t, body, "Booking Successful!")
}

func TestCancelFlowIsTwoStep(t *testing.T) {
	router := newTestRouter()

	postForm(router, "/book", bookingForm())

	// Step one shows the confirmed booking and asks for confirmation.
	body := get(router, "/cancel?pnr=1001").Body.String()
	assert.Contains(t, body, "Booking Details (PNR: 1001)")
	assert.Contains(t, body, "Confirm Cancellation")

	// Step two commits.
	body = postForm(router, "/cancel", url.Values{"pnr": {"1001"}}).Body.String()
	assert.Contains(t, body, "Cancellation Successful")

	// Checking again reports the terminal state.
	body = get(router, "/cancel?pnr=1001").Body.String()
	assert.Contains(t, body, "This ticket is already cancelled")

	body = get(router, "/cancel?pnr=4242").Body.String()
	assert.Contains(t, body, "No booking found with this PNR number")
}

func TestBookingsLookupPage(t *testing.T) {
	router := newTestRouter()

	postForm(router, "/book", bookingForm())

	body := get(router, "/bookings?pnr=1001").Body.String()
	assert.Contains(t, body, "PNR: 1001")
	assert.Contains(t, body, "Aditya Prakash")
	assert.Contains(t, body, "Confirmed")

	body = get(router, "/bookings?name=aditya").Body.String()
	assert.Contains(t, body, "Found 1 booking(s)")

	body = get(router, "/bookings?name=nobody").Body.String()
	assert.Contains(t, body, "No bookings found")
}
