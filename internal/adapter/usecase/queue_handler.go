package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"mesa-promote/internal/core/domain"
	"mesa-promote/internal/core/port"
)

// Runner runs a daily pass.
type Runner interface {
	Run(ctx context.Context, opts RunOptions) (*RunReport, error)
}

// QueueHandler consumes batches of update-queue messages.
type QueueHandler struct {
	runner Runner
	store  port.CampaignStore
	logger *slog.Logger
}

// NewQueueHandler creates a handler that triggers runner.
func NewQueueHandler(runner Runner, store port.CampaignStore, logger *slog.Logger) *QueueHandler {
	return &QueueHandler{runner: runner, store: store, logger: logger}
}

// Handle runs one full pass for a non-empty batch and then records, on every
// link named by a LINK_CHANGED message, that its promotions were remade.
// RUN_ALL messages only trigger the pass. Redelivered batches are safe
// because the pass is idempotent. The pass error is returned after the
// audit entries are written.
func (h *QueueHandler) Handle(ctx context.Context, batch []domain.Message) error {
	if len(batch) == 0 {
		return nil
	}

	runAll := 0
	for _, msg := range batch {
		if msg.Kind == domain.MessageRunAll {
			runAll++
		}
	}
	if runAll > 0 {
		h.logger.Info("received run all messages", slog.Int("count", runAll))
	}

	_, runErr := h.runner.Run(ctx, RunOptions{})
	if runErr != nil {
		h.logger.Error("daily promotions", slog.Any("error", runErr))
	}

	for _, msg := range batch {
		if msg.Kind != domain.MessageLinkChanged {
			continue
		}
		text := fmt.Sprintf("Finished remaking current promotions (this link was: %s)", msg.Reason)
		if err := h.store.AddLog(ctx, msg.LinkID, text); err != nil {
			h.logger.Error("promotion log", slog.Int64("link_id", msg.LinkID), slog.Any("error", err))
		}
	}
	return runErr
}
