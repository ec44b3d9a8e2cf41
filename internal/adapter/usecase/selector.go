package usecase

import (
	"context"
	"fmt"
	"time"

	"mesa-promote/internal/core/calendar"
	"mesa-promote/internal/core/domain"
	"mesa-promote/internal/core/lottery"
	"mesa-promote/internal/core/port"
	"mesa-promote/internal/metrics"
)

// AdSelector serves the request path: it reads the published live sets and
// orders a bounded selection by weighted lottery.
type AdSelector struct {
	live        port.LiveSetStore
	health      port.HealthSignal
	queue       port.Queue
	cal         *calendar.Calendar
	defaultSize int
}

// NewAdSelector creates a selector. defaultSize is used when a request does
// not ask for a positive number of ads.
func NewAdSelector(live port.LiveSetStore, health port.HealthSignal, queue port.Queue, cal *calendar.Calendar, defaultSize int) *AdSelector {
	return &AdSelector{live: live, health: health, queue: queue, cal: cal, defaultSize: defaultSize}
}

// Select returns up to n ads live on the given audiences in lottery order.
// The empty audience name selects the global set. Weights are normalized
// across the requested audiences so they sum to 1.
func (s *AdSelector) Select(ctx context.Context, audiences []string, n int) ([]domain.AdWeight, error) {
	metrics.SelectionsTotal.Inc()
	if n <= 0 {
		n = s.defaultSize
	}

	keys := make([]string, 0, len(audiences))
	seen := make(map[string]bool, len(audiences))
	for _, a := range audiences {
		if a != "" && domain.IsReservedKey(a) {
			continue
		}
		key := domain.LiveSetKey(a)
		if seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	sets, err := s.live.Get(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("load live sets: %w", err)
	}

	var (
		pool  []domain.AdWeight
		total float64
	)
	for _, key := range keys {
		for _, aw := range sets[key] {
			if aw.Weight <= 0 {
				continue
			}
			pool = append(pool, aw)
			total += aw.Weight
		}
	}
	if len(pool) == 0 {
		return nil, nil
	}

	weights := make(map[int]float64, len(pool))
	for i := range pool {
		pool[i].Weight /= total
		weights[i] = pool[i].Weight
	}
	picked := lottery.Draw(nil, weights, n)

	out := make([]domain.AdWeight, 0, len(picked))
	for _, i := range picked {
		out = append(out, pool[i])
	}
	return out, nil
}

// SinceLastUpdate returns the time elapsed since the last clean publish.
// A store that was never updated reports the time since the epoch.
func (s *AdSelector) SinceLastUpdate(ctx context.Context) (time.Duration, error) {
	last, err := s.health.LastUpdated(ctx)
	if err != nil {
		return 0, err
	}
	if last.IsZero() {
		last = time.Unix(0, 0)
	}
	return s.cal.Now().Sub(last), nil
}

// RequestRun queues a full daily pass.
func (s *AdSelector) RequestRun(ctx context.Context) error {
	return s.queue.Publish(ctx, domain.NewRunAllMessage(s.cal.Now()))
}
