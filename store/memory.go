package store

import (
	"context"
	"sync"
	"time"
)

// MemoryCounters implements Counters using an in-memory map. It is intended
// for tests and local development without Redis; values are not shared across
// processes.
type MemoryCounters struct {
	mu       sync.Mutex
	values   map[string]int64
	expiries map[string]time.Time
}

// NewMemoryCounters creates an in-memory counter store.
func NewMemoryCounters() *MemoryCounters {
	return &MemoryCounters{
		values:   make(map[string]int64),
		expiries: make(map[string]time.Time),
	}
}

func (s *MemoryCounters) Get(ctx context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if exp, ok := s.expiries[key]; ok && time.Now().After(exp) {
		delete(s.values, key)
		delete(s.expiries, key)
		return 0, nil
	}
	return s.values[key], nil
}

func (s *MemoryCounters) IncrBy(ctx context.Context, key string, n int64, ttl time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] += n
	if ttl > 0 {
		s.expiries[key] = time.Now().Add(ttl)
	}
	return s.values[key], nil
}

func (s *MemoryCounters) Incr(ctx context.Context, key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key]++
	return s.values[key], nil
}
