package memory

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-promote/internal/core/domain"
)

type recordingHandler struct {
	mu      sync.Mutex
	batches [][]domain.Message
}

func (h *recordingHandler) Handle(_ context.Context, batch []domain.Message) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.batches = append(h.batches, batch)
	return nil
}

func (h *recordingHandler) total() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, b := range h.batches {
		n += len(b)
	}
	return n
}

func TestQueueDeliversEveryMessage(t *testing.T) {
	q := NewQueue(16, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	now := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	for i := int64(1); i <= 5; i++ {
		require.NoError(t, q.Publish(ctx, domain.NewLinkChangedMessage(i, "accepted", now)))
	}

	h := &recordingHandler{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = q.Run(ctx, h)
	}()

	assert.Eventually(t, func() bool { return h.total() == 5 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}
