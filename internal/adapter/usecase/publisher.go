package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"mesa-promote/internal/core/domain"
	"mesa-promote/internal/core/port"
	"mesa-promote/internal/metrics"
)

// Publisher replaces the externally visible live sets.
type Publisher struct {
	store  port.CampaignStore
	live   port.LiveSetStore
	logger *slog.Logger
}

// NewPublisher creates a publisher writing to live.
func NewPublisher(store port.CampaignStore, live port.LiveSetStore, logger *slog.Logger) *Publisher {
	return &Publisher{store: store, live: live, logger: logger}
}

// Publish swaps in byAudience as the live sets for day. Audiences that had
// any scheduled weight between the day before and the day after but are
// missing from
// byAudience are published as empty lists so stale ads stop serving. The
// global audience and the unfiltered union are stored under their reserved
// keys. It returns the published sets.
func (p *Publisher) Publish(ctx context.Context, day time.Time, byAudience map[string][]domain.AdWeight) (map[string][]domain.AdWeight, error) {
	start := time.Now()
	recent, err := p.store.WeightsOverlapping(ctx, day.AddDate(0, 0, -1), day.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("load recent weights: %w", err)
	}

	sets := make(map[string][]domain.AdWeight, len(recent)+len(byAudience)+1)
	for _, w := range recent {
		sets[domain.LiveSetKey(w.Audience)] = []domain.AdWeight{}
	}

	audiences := make([]string, 0, len(byAudience))
	for audience := range byAudience {
		audiences = append(audiences, audience)
	}
	sort.Strings(audiences)

	all := []domain.AdWeight{}
	for _, audience := range audiences {
		key := domain.LiveSetKey(audience)
		sets[key] = append(sets[key], byAudience[audience]...)
		all = append(all, byAudience[audience]...)
	}
	sets[domain.AllAdsKey] = all

	if err = p.live.ReplaceAll(ctx, sets); err != nil {
		return nil, fmt.Errorf("replace live sets: %w", err)
	}

	metrics.LiveAds.Reset()
	for key, ws := range sets {
		metrics.LiveAds.WithLabelValues(key).Set(float64(len(ws)))
	}
	p.logger.Info("live promotions published",
		slog.Int("keys", len(sets)),
		slog.Int("ads", len(all)),
		slog.Duration("took", time.Since(start)))
	return sets, nil
}
