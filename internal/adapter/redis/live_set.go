package redisadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mesa-promote/internal/core/domain"
)

const (
	liveSetKey    = "promote:live"
	lastUpdateKey = "promote:last_update"
)

// LiveSetStore keeps every published live set as one field of a single redis
// hash. ReplaceAll rewrites the hash inside MULTI/EXEC and Get reads it with
// one HMGET, so readers never see a half-published set.
type LiveSetStore struct {
	rdb *redis.Client
}

// NewLiveSetStore returns a live-set store backed by rdb.
func NewLiveSetStore(rdb *redis.Client) *LiveSetStore {
	return &LiveSetStore{rdb: rdb}
}

func (s *LiveSetStore) ReplaceAll(ctx context.Context, sets map[string][]domain.AdWeight) error {
	fields := make(map[string]any, len(sets))
	for key, weights := range sets {
		if weights == nil {
			weights = []domain.AdWeight{}
		}
		data, err := json.Marshal(weights)
		if err != nil {
			return fmt.Errorf("encode live set %q: %w", key, err)
		}
		fields[key] = data
	}

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, liveSetKey)
		if len(fields) > 0 {
			pipe.HSet(ctx, liveSetKey, fields)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace live sets: %w", err)
	}
	return nil
}

func (s *LiveSetStore) Get(ctx context.Context, keys []string) (map[string][]domain.AdWeight, error) {
	out := make(map[string][]domain.AdWeight, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	values, err := s.rdb.HMGet(ctx, liveSetKey, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("read live sets: %w", err)
	}
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var weights []domain.AdWeight
		if err = json.Unmarshal([]byte(raw), &weights); err != nil {
			return nil, fmt.Errorf("decode live set %q: %w", keys[i], err)
		}
		out[keys[i]] = weights
	}
	return out, nil
}

// HealthSignal stores the last successful publish time in redis so every
// replica reports the same value.
type HealthSignal struct {
	rdb *redis.Client
}

// NewHealthSignal returns a health signal backed by rdb.
func NewHealthSignal(rdb *redis.Client) *HealthSignal {
	return &HealthSignal{rdb: rdb}
}

func (h *HealthSignal) MarkUpdated(ctx context.Context, at time.Time) error {
	if err := h.rdb.Set(ctx, lastUpdateKey, at.UTC().Format(time.RFC3339Nano), 0).Err(); err != nil {
		return fmt.Errorf("mark live sets updated: %w", err)
	}
	return nil
}

// LastUpdated returns the zero time when nothing was ever published.
func (h *HealthSignal) LastUpdated(ctx context.Context) (time.Time, error) {
	raw, err := h.rdb.Get(ctx, lastUpdateKey).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("read last update: %w", err)
	}
	at, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: last update %q", domain.ErrInvalidData, raw)
	}
	return at, nil
}
