package memory

import (
	"context"
	"log/slog"

	"mesa-promote/internal/core/domain"
)

// BatchHandler handles a batch of update-queue messages.
type BatchHandler interface {
	Handle(ctx context.Context, batch []domain.Message) error
}

// Queue is an in-process update queue used when no broker is configured.
// Messages that pile up while a batch is handled are coalesced into the
// next batch.
type Queue struct {
	ch     chan domain.Message
	logger *slog.Logger
}

// NewQueue returns a queue buffering up to size messages.
func NewQueue(size int, logger *slog.Logger) *Queue {
	return &Queue{ch: make(chan domain.Message, size), logger: logger}
}

// Publish blocks while the buffer is full.
func (q *Queue) Publish(ctx context.Context, msg domain.Message) error {
	select {
	case q.ch <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run feeds handler until ctx is done.
func (q *Queue) Run(ctx context.Context, handler BatchHandler) error {
	for {
		var batch []domain.Message
		select {
		case <-ctx.Done():
			return nil
		case msg := <-q.ch:
			batch = append(batch, msg)
		}
	drain:
		for {
			select {
			case msg := <-q.ch:
				batch = append(batch, msg)
			default:
				break drain
			}
		}
		if err := handler.Handle(ctx, batch); err != nil {
			q.logger.Error("handle queue batch", slog.Int("size", len(batch)), slog.Any("error", err))
		}
	}
}
