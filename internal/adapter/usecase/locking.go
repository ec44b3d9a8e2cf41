package usecase

import (
	"context"
	"fmt"
	"time"

	"mesa-promote/internal/core/domain"
	"mesa-promote/internal/core/port"
)

// BoundedLocker gives up on a link lock after wait. The lock itself is
// acquired under the caller's context only for that long.
type BoundedLocker struct {
	locker port.LinkLocker
	wait   time.Duration
}

// NewBoundedLocker wraps locker. A non-positive wait waits as long as ctx.
func NewBoundedLocker(locker port.LinkLocker, wait time.Duration) *BoundedLocker {
	return &BoundedLocker{locker: locker, wait: wait}
}

func (b *BoundedLocker) Lock(ctx context.Context, linkID int64) (func(), error) {
	if b.wait <= 0 {
		return b.locker.Lock(ctx, linkID)
	}
	lockCtx, cancel := context.WithTimeout(ctx, b.wait)
	defer cancel()
	return b.locker.Lock(lockCtx, linkID)
}

// withLinkLock runs fn while holding the per-link lock.
func withLinkLock(ctx context.Context, locker port.LinkLocker, linkID int64, fn func() error) error {
	unlock, err := locker.Lock(ctx, linkID)
	if err != nil {
		return fmt.Errorf("lock link %d: %w", linkID, err)
	}
	defer unlock()
	return fn()
}

// mutateLink re-reads a link under its lock, applies fn and stores the link
// when fn reports a change. It returns the stored link.
func mutateLink(ctx context.Context, store port.CampaignStore, locker port.LinkLocker, linkID int64,
	fn func(l *domain.Link) bool) (*domain.Link, bool, error) {
	var (
		link    *domain.Link
		changed bool
	)
	err := withLinkLock(ctx, locker, linkID, func() error {
		var err error
		if link, err = store.Link(ctx, linkID); err != nil {
			return err
		}
		if changed = fn(link); !changed {
			return nil
		}
		return store.UpdateLink(ctx, link)
	})
	return link, changed, err
}
