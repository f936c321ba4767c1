package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const seatCacheTTL = 30 * time.Second

// SeatCache stores availability counts in Redis under seats:<train>. The
// TTL is a backstop only; booking and cancellation invalidate the key so
// counts never go stale across mutations.
type SeatCache struct {
	client *redis.Client
}

func NewSeatCache(client *redis.Client) *SeatCache {
	return &SeatCache{client: client}
}

func seatKey(trainNumber int) string {
	return fmt.Sprintf("seats:%d", trainNumber)
}

func (c *SeatCache) GetSeats(ctx context.Context, trainNumber int) (int, bool, error) {
	val, err := c.client.Get(ctx, seatKey(trainNumber)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	seats, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt seat count for train %d: %w", trainNumber, err)
	}

	return seats, true, nil
}

func (c *SeatCache) SetSeats(ctx context.Context, trainNumber int, seats int) error {
	return c.client.Set(ctx, seatKey(trainNumber), strconv.Itoa(seats), seatCacheTTL).Err()
}

func (c *SeatCache) Invalidate(ctx context.Context, trainNumber int) error {
	return c.client.Del(ctx, seatKey(trainNumber)).Err()
}
