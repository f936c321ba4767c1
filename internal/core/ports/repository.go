package ports

import (
	"context"

	"github.com/railbook/railbook/internal/core/domain"
)

// TrainCatalog is the read-only set of trains known to the system. A miss
// is an ordinary outcome, not an error.
type TrainCatalog interface {
	FindByNumber(ctx context.Context, number int) (*domain.Train, bool)
	ListAll(ctx context.Context) []domain.Train
}

// BookingStore owns all booking records, keyed by PNR. Put replaces the
// whole record atomically; values are copied in and out so callers cannot
// mutate stored state except through Put.
type BookingStore interface {
	Put(ctx context.Context, booking domain.Booking) error
	Get(ctx context.Context, pnr int) (domain.Booking, bool)
	Values(ctx context.Context) []domain.Booking
}

// ReferenceSequence issues PNRs: strictly increasing, unique for the life
// of the process.
type ReferenceSequence interface {
	Next() int
}

// AvailabilityCache fronts the seat-availability computation. Misses and
// cache failures are equivalent to the caller; mutations must Invalidate so
// freed or taken seats become visible immediately.
type AvailabilityCache interface {
	GetSeats(ctx context.Context, trainNumber int) (int, bool, error)
	SetSeats(ctx context.Context, trainNumber int, seats int) error
	Invalidate(ctx context.Context, trainNumber int) error
}
