package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/railbook/railbook/internal/core/domain"
)

// BookingStore keeps all bookings for the life of the process, keyed by
// PNR. A single RWMutex gives the single-writer discipline the services
// rely on when the store sits behind a concurrent server.
type BookingStore struct {
	mu       sync.RWMutex
	bookings map[int]domain.Booking
}

func NewBookingStore() *BookingStore {
	return &BookingStore{bookings: make(map[int]domain.Booking)}
}

func (s *BookingStore) Put(_ context.Context, booking domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings[booking.PNR] = booking
	return nil
}

func (s *BookingStore) Get(_ context.Context, pnr int) (domain.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, found := s.bookings[pnr]
	return booking, found
}

// Values returns a snapshot of every booking, sorted by PNR so scans and
// renderings are deterministic.
func (s *BookingStore) Values(_ context.Context) []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Booking, 0, len(s.bookings))
	for _, booking := range s.bookings {
		out = append(out, booking)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].PNR < out[j].PNR })

	return out
}
