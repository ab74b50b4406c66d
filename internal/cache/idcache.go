package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const idKeyPrefix = "bursary:idnum:"

// IDCache is a read-through existence cache over applicant national ID
// numbers. It fronts the unique-index check during intake so duplicate
// submissions in the same window are rejected without a database round trip.
// Redis is advisory only: the database unique constraint remains the source
// of truth, so a cache miss or a Redis outage never admits a duplicate.
type IDCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewIDCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *IDCache {
	return &IDCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Open dials Redis and verifies the connection.
func Open(ctx context.Context, addr, password string, db int, ttl time.Duration, logger *slog.Logger) (*IDCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	logger.Info("connected to redis", "addr", addr)
	return NewIDCache(client, ttl, logger), nil
}

func (c *IDCache) Close() error {
	return c.client.Close()
}

// Seen reports whether an ID number was recently recorded. Errors are
// logged and reported as "not seen" so Redis trouble degrades to a
// database check instead of blocking intake.
func (c *IDCache) Seen(ctx context.Context, idNumber string) bool {
	_, err := c.client.Get(ctx, idKeyPrefix+idNumber).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("id cache lookup failed", "error", err)
		}
		return false
	}
	return true
}

// Record marks an ID number as seen for the cache TTL. Best effort.
func (c *IDCache) Record(ctx context.Context, idNumber string) {
	if err := c.client.Set(ctx, idKeyPrefix+idNumber, "1", c.ttl).Err(); err != nil {
		c.logger.Warn("id cache record failed", "error", err)
	}
}
