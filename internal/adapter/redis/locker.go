package redisadapter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"mesa-promote/internal/core/domain"
)

// releaseScript deletes the lock only while it still holds our token, so an
// expired lock taken over by another replica is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

const lockRetry = 50 * time.Millisecond

// LinkLocker is a per-link lock shared by every replica. A lock is a key set
// with NX and a TTL, so a crashed holder cannot block the link forever.
type LinkLocker struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewLinkLocker returns a locker whose locks expire after ttl.
func NewLinkLocker(rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *LinkLocker {
	return &LinkLocker{rdb: rdb, ttl: ttl, logger: logger}
}

// Lock polls until the lock is taken or ctx is done. The error then wraps
// domain.ErrLockTimeout.
func (l *LinkLocker) Lock(ctx context.Context, linkID int64) (func(), error) {
	key := fmt.Sprintf("promote:lock:link:%d", linkID)
	token := uuid.NewString()

	ticker := time.NewTicker(lockRetry)
	defer ticker.Stop()
	for {
		ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil && ctx.Err() == nil {
			return nil, fmt.Errorf("acquire %s: %w", key, err)
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: link %d: %w", domain.ErrLockTimeout, linkID, ctx.Err())
		case <-ticker.C:
		}
	}

	return func() {
		// the caller's context may already be cancelled
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, l.rdb, []string{key}, token).Err(); err != nil {
			l.logger.Warn("release link lock", slog.Int64("link_id", linkID), slog.Any("error", err))
		}
	}, nil
}
