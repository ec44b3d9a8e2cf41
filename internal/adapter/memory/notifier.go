package memory

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"mesa-promote/internal/core/domain"
)

// LogNotifier writes lifecycle notifications to the log instead of sending
// them anywhere.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a notifier logging through logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Accepted(ctx context.Context, link *domain.Link) error {
	n.log(ctx, "accepted", link)
	return nil
}

func (n *LogNotifier) Rejected(ctx context.Context, link *domain.Link, reason string) error {
	n.log(ctx, "rejected", link, slog.String("reason", reason))
	return nil
}

func (n *LogNotifier) Live(ctx context.Context, link *domain.Link) error {
	n.log(ctx, "live", link)
	return nil
}

func (n *LogNotifier) Finished(ctx context.Context, link *domain.Link) error {
	n.log(ctx, "finished", link)
	return nil
}

func (n *LogNotifier) BidQueued(ctx context.Context, link *domain.Link, c *domain.Campaign) error {
	n.log(ctx, "bid queued", link, slog.Int64("campaign_id", c.ID), slog.String("bid", c.Bid.StringFixed(2)))
	return nil
}

func (n *LogNotifier) Refunded(ctx context.Context, link *domain.Link, c *domain.Campaign, amount decimal.Decimal) error {
	n.log(ctx, "refunded", link, slog.Int64("campaign_id", c.ID), slog.String("amount", amount.StringFixed(2)))
	return nil
}

func (n *LogNotifier) log(ctx context.Context, kind string, link *domain.Link, attrs ...slog.Attr) {
	attrs = append(attrs,
		slog.String("kind", kind),
		slog.Int64("link_id", link.ID),
		slog.Int64("author_id", link.AuthorID))
	n.logger.LogAttrs(ctx, slog.LevelInfo, "promotion notification", attrs...)
}
