package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-catalog/internal/domain"
)

func newTestCache(t *testing.T) *RedisCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCache(client, time.Minute)
}

func TestRedisCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	listing := []domain.RestaurantBasic{
		{ID: "rest-1", Name: "Trattoria", Address: "12 Vine St", IsActive: true},
	}
	require.NoError(t, cache.Set(ctx, "restaurants:basic", listing))

	var got []domain.RestaurantBasic
	ok, err := cache.Get(ctx, "restaurants:basic", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, listing, got)
}

func TestRedisCache_MissReturnsFalse(t *testing.T) {
	cache := newTestCache(t)

	var got []domain.RestaurantBasic
	ok, err := cache.Get(context.Background(), "restaurants:basic", &got)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	require.NoError(t, cache.Set(ctx, "restaurants:basic", []string{"x"}))
	require.NoError(t, cache.Set(ctx, "restaurants:basic:active", []string{"y"}))
	require.NoError(t, cache.Invalidate(ctx, "restaurants:basic", "restaurants:basic:active"))

	var got []string
	ok, err := cache.Get(ctx, "restaurants:basic", &got)
	assert.NoError(t, err)
	assert.False(t, ok)
}
