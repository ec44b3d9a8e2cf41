package kafkaadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"mesa-promote/internal/core/domain"
)

// BatchHandler handles a batch of update-queue messages.
type BatchHandler interface {
	Handle(ctx context.Context, batch []domain.Message) error
}

// MessageReader is the part of *kafka.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Consumer reads the update queue in batches. Everything that arrives while
// a batch is being collected is handled by one pass.
type Consumer struct {
	reader   MessageReader
	handler  BatchHandler
	logger   *slog.Logger
	maxBatch int
	linger   time.Duration
}

// NewConsumer returns a consumer that feeds handler.
func NewConsumer(reader MessageReader, handler BatchHandler, logger *slog.Logger) *Consumer {
	return &Consumer{
		reader:   reader,
		handler:  handler,
		logger:   logger,
		maxBatch: 100,
		linger:   500 * time.Millisecond,
	}
}

// Run consumes until ctx is done. Offsets are committed after each batch
// whatever the handler returned: a failed pass is logged and the next
// message or tick retries it, and a poisoned record is never redelivered
// forever.
func (c *Consumer) Run(ctx context.Context) error {
	c.logger.Info("queue consumer started")
	for {
		first, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info("queue consumer stopped")
				return nil
			}
			c.logger.Error("fetch message", slog.Any("error", err))
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Second):
			}
			continue
		}

		raw := c.collect(ctx, first)
		batch := c.decode(raw)

		if err = c.handler.Handle(ctx, batch); err != nil {
			c.logger.Error("handle queue batch", slog.Int("size", len(batch)), slog.Any("error", err))
		}
		if err = c.reader.CommitMessages(ctx, raw...); err != nil && !errors.Is(err, context.Canceled) {
			c.logger.Error("commit messages", slog.Any("error", err))
		}
	}
}

// decode drops records that are not valid queue messages.
func (c *Consumer) decode(raw []kafka.Message) []domain.Message {
	batch := make([]domain.Message, 0, len(raw))
	for _, m := range raw {
		msg, err := decodeMessage(m)
		if err != nil {
			c.logger.Error("skip malformed message",
				slog.Int64("offset", m.Offset),
				slog.Int("partition", m.Partition),
				slog.Any("error", err))
			continue
		}
		batch = append(batch, msg)
	}
	return batch
}

// collect gathers whatever else is already waiting, up to maxBatch messages
// or until linger passes without a new one.
func (c *Consumer) collect(ctx context.Context, first kafka.Message) []kafka.Message {
	batch := []kafka.Message{first}
	for len(batch) < c.maxBatch {
		fetchCtx, cancel := context.WithTimeout(ctx, c.linger)
		m, err := c.reader.FetchMessage(fetchCtx)
		cancel()
		if err != nil {
			break
		}
		batch = append(batch, m)
	}
	return batch
}

// Close closes the underlying reader.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
