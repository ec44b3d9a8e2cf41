package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-promote/internal/adapter/memory"
	"mesa-promote/internal/core/domain"
)

type countingRunner struct {
	runs int
	err  error
}

func (r *countingRunner) Run(context.Context, RunOptions) (*RunReport, error) {
	r.runs++
	return &RunReport{}, r.err
}

func TestQueueHandlerRunsOncePerBatch(t *testing.T) {
	store := memory.NewCampaignStore()
	runner := &countingRunner{}
	h := NewQueueHandler(runner, store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	err := h.Handle(ctx, []domain.Message{
		domain.NewRunAllMessage(testNow),
		domain.NewLinkChangedMessage(1, "accepted", testNow),
		domain.NewRunAllMessage(testNow),
		domain.NewLinkChangedMessage(2, "rejected", testNow),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, runner.runs)
	assert.Equal(t, []string{"Finished remaking current promotions (this link was: accepted)"}, store.Logs(1))
	assert.Equal(t, []string{"Finished remaking current promotions (this link was: rejected)"}, store.Logs(2))

	require.NoError(t, h.Handle(ctx, nil))
	assert.Equal(t, 1, runner.runs)
}

func TestQueueHandlerLogsEvenWhenRunFails(t *testing.T) {
	store := memory.NewCampaignStore()
	boom := errors.New("boom")
	runner := &countingRunner{err: boom}
	h := NewQueueHandler(runner, store, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := h.Handle(context.Background(), []domain.Message{domain.NewLinkChangedMessage(3, "accepted", testNow)})
	assert.ErrorIs(t, err, boom)
	assert.Len(t, store.Logs(3), 1)
}
