package memory

import (
	"context"
	"fmt"
	"sync"

	"mesa-promote/internal/core/domain"
)

// LinkLocker hands out one mutex per link id. A lock is a buffered channel
// so acquisition can be abandoned when the context ends.
type LinkLocker struct {
	mu    sync.Mutex
	locks map[int64]*linkLock
}

type linkLock struct {
	ch   chan struct{}
	refs int
}

// NewLinkLocker returns an empty locker.
func NewLinkLocker() *LinkLocker {
	return &LinkLocker{locks: make(map[int64]*linkLock)}
}

// Lock blocks until the link's lock is held or ctx is done, in which case
// the error wraps domain.ErrLockTimeout.
func (l *LinkLocker) Lock(ctx context.Context, linkID int64) (func(), error) {
	l.mu.Lock()
	lk, ok := l.locks[linkID]
	if !ok {
		lk = &linkLock{ch: make(chan struct{}, 1)}
		l.locks[linkID] = lk
	}
	lk.refs++
	l.mu.Unlock()

	select {
	case lk.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(linkID, lk)
		return nil, fmt.Errorf("%w: link %d: %w", domain.ErrLockTimeout, linkID, ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-lk.ch
			l.release(linkID, lk)
		})
	}, nil
}

func (l *LinkLocker) release(linkID int64, lk *linkLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	lk.refs--
	if lk.refs == 0 {
		delete(l.locks, linkID)
	}
}
