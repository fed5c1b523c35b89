package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/HKKoho/DocumentHub/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Store implements db.Store with process-local maps. It backs the
// "memory" database driver used for development and tests.
type Store struct {
	mu       sync.RWMutex
	hashes   map[string]map[string]string
	counters map[string]int64
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		hashes:   make(map[string]map[string]string),
		counters: make(map[string]int64),
	}
}

// Ping always succeeds.
func (s *Store) Ping(_ context.Context) error { return nil }

// Close is a no-op.
func (s *Store) Close() {}

// WaitForReady returns immediately; the store is always ready.
func (s *Store) WaitForReady(_ context.Context, _ time.Duration) error { return nil }

// HSet merges fields into the hash at key, mirroring HSET semantics.
func (s *Store) HSet(_ context.Context, key string, fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.hashes[key]
	if !ok {
		h = make(map[string]string, len(fields))
		s.hashes[key] = h
	}
	for k, v := range fields {
		h[k] = v
	}
	return nil
}

// HGetAll returns a copy of all fields of a hash. Missing keys yield an
// empty map, matching HGETALL.
func (s *Store) HGetAll(_ context.Context, key string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyFields(s.hashes[key]), nil
}

// HGetAllMulti fetches all fields for multiple hashes.
func (s *Store) HGetAllMulti(_ context.Context, keys []string) ([]map[string]string, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]map[string]string, len(keys))
	for i, key := range keys {
		out[i] = copyFields(s.hashes[key])
	}
	return out, nil
}

// Exists checks if a key exists.
func (s *Store) Exists(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.hashes[key]
	return ok, nil
}

// Scan returns keys matching a pattern, sorted for deterministic output.
// Only exact keys and trailing-star prefix globs are supported; those are
// the only patterns the repositories use.
func (s *Store) Scan(_ context.Context, pattern string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	for key := range s.hashes {
		if matchPattern(pattern, key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// IncrBy atomically increments a counter and returns the new value.
func (s *Store) IncrBy(_ context.Context, key string, val int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters[key] += val
	return s.counters[key], nil
}

func copyFields(h map[string]string) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}

func matchPattern(pattern, key string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(key, prefix)
	}
	return key == pattern
}
