// Package cache memoizes planner query results in Redis, keyed by the
// query's endpoints. It is pure ambient plumbing around the HTTP
// service: the planner itself never depends on this package, and a
// disabled or unreachable cache always degrades to a live query.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/exp/slog"
)

// DefaultTTL is how long a cached query result is trusted before it
// must be recomputed.
const DefaultTTL = 10 * time.Minute

// Cache wraps a Redis client. A nil *Cache (returned by New when addr
// is empty) is always a cache miss, letting callers skip a nil check.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to addr. An empty addr disables the cache: New returns
// a nil *Cache, and every Get/Set on it is a safe no-op.
func New(addr string, ttl time.Duration) *Cache {
	if addr == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	return &Cache{client: client, ttl: ttl}
}

// Close releases the underlying connection pool. Safe to call on nil.
func (self *Cache) Close() error {
	if self == nil {
		return nil
	}
	return self.client.Close()
}

// ShortestPathKey and FastestPathKey format the memoization key for
// the two query kinds; endpoints never collide across kinds.
func ShortestPathKey(src, dest uint64) string {
	return fmt.Sprintf("shortest:%d:%d", src, dest)
}

func FastestPathKey(src, dest uint64) string {
	return fmt.Sprintf("fastest:%d:%d", src, dest)
}

// Get looks up key and decodes it into dest. Returns (false, nil) on a
// miss, when the cache is disabled, on a Redis failure and on an entry
// that does not decode; the last two are logged. The error result is
// always nil.
func (self *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if self == nil {
		return false, nil
	}
	data, err := self.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		slog.Warn("cache: get failed", "key", key, "error", err)
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		slog.Warn("cache: corrupt entry", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

// Set stores value under key with the cache's configured TTL. Errors
// are logged and swallowed: a failed write never fails the request
// that triggered it.
func (self *Cache) Set(ctx context.Context, key string, value interface{}) {
	if self == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		slog.Warn("cache: marshal failed", "key", key, "error", err)
		return
	}
	if err := self.client.Set(ctx, key, data, self.ttl).Err(); err != nil {
		slog.Warn("cache: set failed", "key", key, "error", err)
	}
}
