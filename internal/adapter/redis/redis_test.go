package redisadapter

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-promote/internal/core/domain"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestLiveSetStoreReplaceAll(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newRedis(t)
	store := NewLiveSetStore(rdb)

	cats := []domain.AdWeight{{LinkID: 1, CampaignID: 10, Audience: "cats", Weight: 100}}
	require.NoError(t, store.ReplaceAll(ctx, map[string][]domain.AdWeight{
		domain.AllAdsKey: cats,
		"cats":           cats,
		"dogs":           {{LinkID: 2, CampaignID: 20, Audience: "dogs", Weight: 50}},
	}))

	got, err := store.Get(ctx, []string{"cats", domain.AllAdsKey, "missing"})
	require.NoError(t, err)
	assert.Equal(t, map[string][]domain.AdWeight{domain.AllAdsKey: cats, "cats": cats}, got)

	t.Run("keys absent from the new set are removed", func(t *testing.T) {
		require.NoError(t, store.ReplaceAll(ctx, map[string][]domain.AdWeight{
			domain.AllAdsKey: cats,
			"cats":           nil,
		}))
		fields, err := mr.HKeys(liveSetKey)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{domain.AllAdsKey, "cats"}, fields)

		got, err := store.Get(ctx, []string{"cats", "dogs"})
		require.NoError(t, err)
		assert.Equal(t, map[string][]domain.AdWeight{"cats": {}}, got)
	})

	t.Run("empty publish clears everything", func(t *testing.T) {
		require.NoError(t, store.ReplaceAll(ctx, nil))
		assert.False(t, mr.Exists(liveSetKey))

		got, err := store.Get(ctx, []string{domain.AllAdsKey})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestLiveSetStoreGet(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newRedis(t)
	store := NewLiveSetStore(rdb)

	got, err := store.Get(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	mr.HSet(liveSetKey, "cats", "not json")
	_, err = store.Get(ctx, []string{"cats"})
	assert.ErrorContains(t, err, `decode live set "cats"`)
}

func TestHealthSignal(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newRedis(t)
	health := NewHealthSignal(rdb)

	at, err := health.LastUpdated(ctx)
	require.NoError(t, err)
	assert.True(t, at.IsZero())

	want := time.Date(2024, 3, 10, 15, 0, 0, 123, time.FixedZone("EST", -5*3600))
	require.NoError(t, health.MarkUpdated(ctx, want))
	at, err = health.LastUpdated(ctx)
	require.NoError(t, err)
	assert.True(t, want.Equal(at))
	assert.Equal(t, time.UTC, at.Location())

	require.NoError(t, mr.Set(lastUpdateKey, "yesterday"))
	_, err = health.LastUpdated(ctx)
	assert.ErrorIs(t, err, domain.ErrInvalidData)
}

func TestLinkLocker(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newRedis(t)
	locker := NewLinkLocker(rdb, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
	key := "promote:lock:link:7"

	t.Run("release frees the lock", func(t *testing.T) {
		unlock, err := locker.Lock(ctx, 7)
		require.NoError(t, err)
		assert.True(t, mr.Exists(key))
		mr.CheckTTL(t, key, time.Minute)

		unlock()
		assert.False(t, mr.Exists(key))
	})

	t.Run("held lock times out", func(t *testing.T) {
		unlock, err := locker.Lock(ctx, 7)
		require.NoError(t, err)
		defer unlock()

		waitCtx, cancel := context.WithTimeout(ctx, 3*lockRetry)
		defer cancel()
		_, err = locker.Lock(waitCtx, 7)
		assert.ErrorIs(t, err, domain.ErrLockTimeout)
	})

	t.Run("release leaves a lock taken over by another holder", func(t *testing.T) {
		unlock, err := locker.Lock(ctx, 7)
		require.NoError(t, err)

		// our lock expires and another replica takes it
		mr.FastForward(time.Minute + time.Second)
		require.False(t, mr.Exists(key))
		other, err := locker.Lock(ctx, 7)
		require.NoError(t, err)
		token, err := mr.Get(key)
		require.NoError(t, err)

		unlock()
		current, err := mr.Get(key)
		require.NoError(t, err)
		assert.Equal(t, token, current)

		other()
		assert.False(t, mr.Exists(key))
	})
}
