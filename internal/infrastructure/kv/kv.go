// Package kv is the engine's port onto the key-value backend. The Redis
// client and the in-memory fallback both satisfy Store, so the repositories
// never know which one is active.
package kv

import (
	"context"
	"time"
)

// Member is one sorted-set entry together with its score.
type Member struct {
	Member string
	Score  float64
}

// Pipeline queues writes and dispatches them as one batch. The batch is not
// atomic as a unit: some commands may land while others fail.
type Pipeline interface {
	Set(ctx context.Context, key, value string)
	HSet(ctx context.Context, key, field, value string)
	ZAdd(ctx context.Context, key, member string, score float64)
	SAdd(ctx context.Context, key, member string)
	Exec(ctx context.Context) error
}

// Store is the backend contract.
type Store interface {
	Set(ctx context.Context, key, value string) error
	// Get reports absence through the second return value, never as an error.
	Get(ctx context.Context, key string) (string, bool, error)
	HSet(ctx context.Context, key, field, value string) error
	// HGetAll returns an empty map when the key is absent.
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	ZAdd(ctx context.Context, key, member string, score float64) error
	// ZRevRangeWithScores returns members ordered by descending score.
	// start/stop are inclusive rank indexes; stop -1 means the last member.
	ZRevRangeWithScores(ctx context.Context, key string, start, stop int64) ([]Member, error)
	SAdd(ctx context.Context, key string, members ...string) error
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	TTL(ctx context.Context, key string) (time.Duration, error)
	Pipeline() Pipeline
	Ping(ctx context.Context) error
}
