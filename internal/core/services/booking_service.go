package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/railbook/railbook/internal/core/domain"
	"github.com/railbook/railbook/internal/core/ports"
)

type CreateBookingRequest struct {
	TrainNumber   int    `json:"train_number"`
	PassengerName string `json:"passenger_name"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	Berth         string `json:"berth"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	JourneyDate   string `json:"journey_date"`
}

type BookingService struct {
	catalog ports.TrainCatalog
	store   ports.BookingStore
	seq     ports.ReferenceSequence
	cache   ports.AvailabilityCache

	// mu serializes mutations. The store only makes individual calls
	// atomic, so the capacity check plus insert, and the cancel-state
	// check plus update, each need a lock spanning the pair.
	mu sync.Mutex
}

func NewBookingService(catalog ports.TrainCatalog, store ports.BookingStore, seq ports.ReferenceSequence, cache ports.AvailabilityCache) *BookingService {
	return &BookingService{
		catalog: catalog,
		store:   store,
		seq:     seq,
		cache:   cache,
	}
}

// CreateBooking validates the request, issues a PNR and inserts a confirmed
// booking. All checks run before any state changes, so a failed request
// leaves the store exactly as it was. The capacity check and the insert run
// under one lock, so requests racing for the last seat cannot oversell a
// train.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if strings.TrimSpace(req.PassengerName) == "" {
		return nil, domain.ValidationError("passenger name is required")
	}

	if strings.TrimSpace(req.Email) == "" {
		return nil, domain.ValidationError("email address is required")
	}

	if strings.TrimSpace(req.Phone) == "" {
		return nil, domain.ValidationError("mobile number is required")
	}

	if req.Age < 1 || req.Age > 100 {
		return nil, domain.ValidationError(fmt.Sprintf("age must be between 1 and 100, got %d", req.Age))
	}

	gender, ok := domain.ParseGender(req.Gender)
	if !ok {
		return nil, domain.ValidationError(fmt.Sprintf("unknown gender %q", req.Gender))
	}

	berth := domain.BerthNoPreference
	if req.Berth != "" {
		berth, ok = domain.ParseBerthPreference(req.Berth)
		if !ok {
			return nil, domain.ValidationError(fmt.Sprintf("unknown berth preference %q", req.Berth))
		}
	}

	journeyDate, err := time.ParseInLocation(time.DateOnly, req.JourneyDate, time.Local)
	if err != nil {
		return nil, domain.ValidationError(fmt.Sprintf("invalid journey date %q, expected YYYY-MM-DD", req.JourneyDate))
	}

	bookingDate := today()
	if journeyDate.Before(bookingDate) {
		return nil, domain.ValidationError("journey date cannot be in the past")
	}

	train, found := s.catalog.FindByNumber(ctx, req.TrainNumber)
	if !found {
		return nil, domain.ValidationError(fmt.Sprintf("train %d does not exist", req.TrainNumber))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if countActiveBookings(s.store.Values(ctx), train.Number) >= train.TotalSeats {
		return nil, domain.ErrNoSeatsAvailable
	}

	booking := domain.Booking{
		PNR:           s.seq.Next(),
		TrainNumber:   train.Number,
		TrainName:     train.Name,
		PassengerName: strings.TrimSpace(req.PassengerName),
		Age:           req.Age,
		Gender:        gender,
		Berth:         berth,
		Email:         strings.TrimSpace(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		JourneyDate:   journeyDate,
		BookingDate:   bookingDate,
		Status:        domain.BookingConfirmed,
	}

	if err := s.store.Put(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to store booking: %w", err)
	}

	s.invalidateSeats(ctx, train.Number)

	return &booking, nil
}

// CancelBooking transitions a confirmed booking to cancelled. The record is
// kept so lookups keep working; re-cancelling is rejected, not ignored.
// The state check and the update run under one lock, so of two concurrent
// cancels for the same PNR exactly one succeeds.
func (s *BookingService) CancelBooking(ctx context.Context, pnr int) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, found := s.store.Get(ctx, pnr)
	if !found {
		return nil, domain.ErrBookingNotFound
	}

	if booking.IsCancelled() {
		return nil, domain.ErrAlreadyCancelled
	}

	booking.Status = domain.BookingCancelled
	booking.Cancelled = true

	if err := s.store.Put(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking %d: %w", pnr, err)
	}

	s.invalidateSeats(ctx, booking.TrainNumber)

	return &booking, nil
}

func (s *BookingService) invalidateSeats(ctx context.Context, trainNumber int) {
	if err := s.cache.Invalidate(ctx, trainNumber); err != nil {
		log.Printf("Failed to invalidate seat cache for train %d: %v", trainNumber, err)
	}
}

func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
