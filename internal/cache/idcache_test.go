package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupCache(t *testing.T, ttl time.Duration) (*IDCache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewIDCache(client, ttl, logger), mr
}

func TestSeenAfterRecord(t *testing.T) {
	cache, _ := setupCache(t, time.Hour)
	ctx := context.Background()

	assert.False(t, cache.Seen(ctx, "12345678"))
	cache.Record(ctx, "12345678")
	assert.True(t, cache.Seen(ctx, "12345678"))
	assert.False(t, cache.Seen(ctx, "87654321"))
}

func TestSeenExpiresAfterTTL(t *testing.T) {
	cache, mr := setupCache(t, time.Minute)
	ctx := context.Background()

	cache.Record(ctx, "12345678")
	assert.True(t, cache.Seen(ctx, "12345678"))

	mr.FastForward(2 * time.Minute)
	assert.False(t, cache.Seen(ctx, "12345678"))
}

func TestSeenDegradesOnRedisDown(t *testing.T) {
	cache, mr := setupCache(t, time.Hour)
	ctx := context.Background()

	cache.Record(ctx, "12345678")
	mr.Close()

	// With Redis gone the cache must answer "not seen", not error.
	assert.False(t, cache.Seen(ctx, "12345678"))
}
