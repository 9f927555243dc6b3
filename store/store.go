// Package store provides the shared counter store backing the global token
// budget and the usage metrics. Counters are plain integer keys that only
// ever move forward; every mutation must be an atomic increment so that
// concurrent requests never lose updates.
package store

import (
	"context"
	"time"
)

// Counters is the storage contract for shared counters. Implementations must
// make IncrBy and Incr atomic read-modify-write operations.
type Counters interface {
	// Get returns the current value of key. A missing key reads as zero.
	Get(ctx context.Context, key string) (int64, error)

	// IncrBy atomically adds n to key and (re)sets its expiry when ttl > 0.
	// Returns the new value.
	IncrBy(ctx context.Context, key string, n int64, ttl time.Duration) (int64, error)

	// Incr atomically adds one to key with no expiry. Returns the new value.
	Incr(ctx context.Context, key string) (int64, error)
}
