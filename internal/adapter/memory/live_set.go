package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"mesa-promote/internal/core/domain"
)

// LiveSetStore keeps the published live sets as an immutable snapshot behind
// an atomic pointer. Readers load the current snapshot without locking and
// writers swap in a complete replacement.
type LiveSetStore struct {
	current atomic.Pointer[map[string][]domain.AdWeight]
}

// NewLiveSetStore returns a store with nothing published.
func NewLiveSetStore() *LiveSetStore {
	s := &LiveSetStore{}
	empty := map[string][]domain.AdWeight{}
	s.current.Store(&empty)
	return s
}

// ReplaceAll publishes a deep copy of sets as the new snapshot.
func (s *LiveSetStore) ReplaceAll(_ context.Context, sets map[string][]domain.AdWeight) error {
	next := make(map[string][]domain.AdWeight, len(sets))
	for key, weights := range sets {
		next[key] = append([]domain.AdWeight{}, weights...)
	}
	s.current.Store(&next)
	return nil
}

// Get reads the requested keys from one snapshot.
func (s *LiveSetStore) Get(_ context.Context, keys []string) (map[string][]domain.AdWeight, error) {
	snapshot := *s.current.Load()
	out := make(map[string][]domain.AdWeight, len(keys))
	for _, key := range keys {
		if weights, ok := snapshot[key]; ok {
			out[key] = append([]domain.AdWeight{}, weights...)
		}
	}
	return out, nil
}

// Keys returns every key in the current snapshot.
func (s *LiveSetStore) Keys() []string {
	snapshot := *s.current.Load()
	keys := make([]string, 0, len(snapshot))
	for key := range snapshot {
		keys = append(keys, key)
	}
	return keys
}

// HealthSignal keeps the last successful publish time in memory.
type HealthSignal struct {
	mu   sync.RWMutex
	last time.Time
}

// NewHealthSignal returns a signal that has never been updated.
func NewHealthSignal() *HealthSignal { return &HealthSignal{} }

func (h *HealthSignal) MarkUpdated(_ context.Context, at time.Time) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = at
	return nil
}

func (h *HealthSignal) LastUpdated(_ context.Context) (time.Time, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.last, nil
}
