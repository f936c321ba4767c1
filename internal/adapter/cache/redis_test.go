package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"github.com/railbook/railbook/internal/adapter/cache"
)

func TestSeatCache_GetSeats_Hit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := cache.NewSeatCache(db)

	mock.ExpectGet("seats:10101").SetVal("99")

	seats, ok, err := c.GetSeats(context.Background(), 10101)

	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 99, seats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeatCache_GetSeats_Miss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := cache.NewSeatCache(db)

	mock.ExpectGet("seats:10101").RedisNil()

	_, ok, err := c.GetSeats(context.Background(), 10101)

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeatCache_GetSeats_CorruptValue(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := cache.NewSeatCache(db)

	mock.ExpectGet("seats:10101").SetVal("ninety-nine")

	_, ok, err := c.GetSeats(context.Background(), 10101)

	assert.Error(t, err)
	assert.False(t, ok)
}

func TestSeatCache_SetSeats(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := cache.NewSeatCache(db)

	mock.ExpectSet("seats:10101", "99", 30*time.Second).SetVal("OK")

	assert.NoError(t, c.SetSeats(context.Background(), 10101, 99))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeatCache_Invalidate(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := cache.NewSeatCache(db)

	mock.ExpectDel("seats:10101").SetVal(1)

	assert.NoError(t, c.Invalidate(context.Background(), 10101))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoop_AlwaysMisses(t *testing.T) {
	c := cache.NewNoop()
	ctx := context.Background()

	assert.NoError(t, c.SetSeats(ctx, 10101, 99))

	_, ok, err := c.GetSeats(ctx, 10101)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, c.Invalidate(ctx, 10101))
}
