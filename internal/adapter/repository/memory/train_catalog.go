package memory

import (
	"context"

	"github.com/railbook/railbook/internal/core/domain"
)

// TrainCatalog is the fixed set of trains, loaded once and never mutated.
// Lookups index by train number; listing preserves seed order.
type TrainCatalog struct {
	trains   []domain.Train
	byNumber map[int]int
}

func NewTrainCatalog(trains []domain.Train) *TrainCatalog {
	byNumber := make(map[int]int, len(trains))
	for i, train := range trains {
		byNumber[train.Number] = i
	}

	return &TrainCatalog{trains: trains, byNumber: byNumber}
}

// NewSeededTrainCatalog builds the demo catalog.
func NewSeededTrainCatalog() *TrainCatalog {
	return NewTrainCatalog([]domain.Train{
		{
			Number:      10101,
			Name:        "Pune Express",
			TotalSeats:  100,
			Source:      "Mumbai",
			Destination: "Pune",
			Departure:   "07:00",
			Arrival:     "10:30",
			Days:        "Daily",
			Type:        "Express",
		},
		{
			Number:      10202,
			Name:        "Delhi Shatabdi",
			TotalSeats:  120,
			Source:      "Delhi",
			Destination: "Jaipur",
			Departure:   "06:00",
			Arrival:     "10:15",
			Days:        "Daily",
			Type:        "Shatabdi",
		},
		{
			Number:      10303,
			Name:        "Mumbai Rajdhani",
			TotalSeats:  80,
			Source:      "Mumbai",
			Destination: "Delhi",
			Departure:   "16:00",
			Arrival:     "08:30 (next day)",
			Days:        "Daily",
			Type:        "Rajdhani",
		},
		{
			Number:      10404,
			Name:        "Chennai Mail",
			TotalSeats:  150,
			Source:      "Bangalore",
			Destination: "Chennai",
			Departure:   "14:30",
			Arrival:     "20:45",
			Days:        "Daily",
			Type:        "Mail",
		},
	})
}

func (c *TrainCatalog) FindByNumber(_ context.Context, number int) (*domain.Train, bool) {
	i, ok := c.byNumber[number]
	if !ok {
		return nil, false
	}

	train := c.trains[i]
	return &train, true
}

func (c *TrainCatalog) ListAll(_ context.Context) []domain.Train {
	out := make([]domain.Train, len(c.trains))
	copy(out, c.trains)
	return out
}
