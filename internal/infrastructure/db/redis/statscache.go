package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/clientdesk/portal/internal/api/metrics"
)

const statsTTL = 30 * time.Second

// StatsCache is a short-TTL read-through cache for dashboard counters.
// Key format: stats:<counter>
type StatsCache struct {
	client *redis.Client
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client) *StatsCache {
	return &StatsCache{client: client}
}

// GetCount returns the cached value for key and whether it was present.
func (c *StatsCache) GetCount(ctx context.Context, key string) (int64, bool, error) {
	n, err := c.client.Get(ctx, c.key(key)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.StatsCacheLookupsTotal.WithLabelValues("miss").Inc()
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("stats get: %w", err)
	}
	metrics.StatsCacheLookupsTotal.WithLabelValues("hit").Inc()
	return n, true, nil
}

// SetCount stores value under key; the entry expires after statsTTL so the
// dashboard never serves counters staler than that.
func (c *StatsCache) SetCount(ctx context.Context, key string, value int64) error {
	return c.client.Set(ctx, c.key(key), value, statsTTL).Err()
}

func (c *StatsCache) key(k string) string {
	return "stats:" + k
}
