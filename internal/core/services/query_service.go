package services

import (
	"context"
	"strings"

	"github.com/railbook/railbook/internal/core/domain"
	"github.com/railbook/railbook/internal/core/ports"
)

// QueryService answers the read-only questions the presentation layer asks:
// train listings, availability counts, route search and booking lookups.
type QueryService struct {
	catalog ports.TrainCatalog
	store   ports.BookingStore
	cache   ports.AvailabilityCache
}

func NewQueryService(catalog ports.TrainCatalog, store ports.BookingStore, cache ports.AvailabilityCache) *QueryService {
	return &QueryService{
		catalog: catalog,
		store:   store,
		cache:   cache,
	}
}

func (s *QueryService) ListTrains(ctx context.Context) []domain.Train {
	return s.catalog.ListAll(ctx)
}

func (s *QueryService) FindTrain(ctx context.Context, number int) (*domain.Train, error) {
	train, found := s.catalog.FindByNumber(ctx, number)
	if !found {
		return nil, domain.ErrTrainNotFound
	}
	return train, nil
}

// AvailableSeats reports capacity minus active bookings for a train. An
// unknown train number counts as zero seats rather than an error, matching
// what the booking form shows for a bad train field. Cache failures fall
// back to recomputing from the store.
//
// The backfill after a recomputation can race a concurrent mutation's
// invalidation and write back a count that is off by that mutation; the
// cache TTL bounds how long such a value can live, and the store remains
// the source of truth.
func (s *QueryService) AvailableSeats(ctx context.Context, trainNumber int) int {
	train, found := s.catalog.FindByNumber(ctx, trainNumber)
	if !found {
		return 0
	}

	if seats, ok, err := s.cache.GetSeats(ctx, trainNumber); err == nil && ok {
		return seats
	}

	seats := train.TotalSeats - countActiveBookings(s.store.Values(ctx), trainNumber)

	_ = s.cache.SetSeats(ctx, trainNumber, seats)

	return seats
}

// SearchRoute returns every train running source to destination, in catalog
// order. Station names match exactly; no matches is an empty result, not an
// error.
func (s *QueryService) SearchRoute(ctx context.Context, source, destination string) []domain.Train {
	matches := []domain.Train{}
	for _, train := range s.catalog.ListAll(ctx) {
		if train.Source == source && train.Destination == destination {
			matches = append(matches, train)
		}
	}
	return matches
}

func (s *QueryService) FindBookingByReference(ctx context.Context, pnr int) (*domain.Booking, error) {
	booking, found := s.store.Get(ctx, pnr)
	if !found {
		return nil, domain.ErrBookingNotFound
	}
	return &booking, nil
}

// FindBookingsByPassengerName matches the given fragment case-insensitively
// against passenger names, cancelled bookings included.
func (s *QueryService) FindBookingsByPassengerName(ctx context.Context, name string) []domain.Booking {
	needle := strings.ToLower(name)

	matches := []domain.Booking{}
	for _, booking := range s.store.Values(ctx) {
		if strings.Contains(strings.ToLower(booking.PassengerName), needle) {
			matches = append(matches, booking)
		}
	}
	return matches
}

func countActiveBookings(bookings []domain.Booking, trainNumber int) int {
	count := 0
	for _, b := range bookings {
		if b.TrainNumber == trainNumber && !b.Cancelled {
			count++
		}
	}
	return count
}
