package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// snapshotTTL matches the one-hour window the console UI caches aggregates
// for; a dashboard snapshot older than that is recomputed.
const snapshotTTL = time.Hour

// StatsCache stores dashboard aggregate snapshots as JSON blobs with a TTL.
type StatsCache struct {
	client *redis.Client
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// Get loads a snapshot into dest. The first return value reports a cache hit.
func (c *StatsCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("stats cache get: %w", err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("stats cache decode: %w", err)
	}
	return true, nil
}

// Set stores a snapshot, replacing any previous one under the same key.
func (c *StatsCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, snapshotTTL).Err(); err != nil {
		return fmt.Errorf("stats cache set: %w", err)
	}
	return nil
}
