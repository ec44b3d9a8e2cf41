package kafkaadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"mesa-promote/internal/core/domain"
)

// Notification is the event written to the notification topic. A mailer
// downstream turns it into a message to the link's author.
type Notification struct {
	ID         uuid.UUID        `json:"id"`
	Kind       string           `json:"kind"`
	LinkID     int64            `json:"link"`
	AuthorID   int64            `json:"author"`
	CampaignID int64            `json:"campaign,omitempty"`
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	Reason     string           `json:"reason,omitempty"`
	At         time.Time        `json:"at"`
}

// Notifier writes lifecycle notifications to kafka.
type Notifier struct {
	writer *kafka.Writer
	now    func() time.Time
}

// NewNotifier returns a notifier producing to writer.
func NewNotifier(writer *kafka.Writer) *Notifier {
	return &Notifier{writer: writer, now: time.Now}
}

func (n *Notifier) Accepted(ctx context.Context, link *domain.Link) error {
	return n.send(ctx, n.event("accepted", link))
}

func (n *Notifier) Rejected(ctx context.Context, link *domain.Link, reason string) error {
	ev := n.event("rejected", link)
	ev.Reason = reason
	return n.send(ctx, ev)
}

func (n *Notifier) Live(ctx context.Context, link *domain.Link) error {
	return n.send(ctx, n.event("live", link))
}

func (n *Notifier) Finished(ctx context.Context, link *domain.Link) error {
	return n.send(ctx, n.event("finished", link))
}

func (n *Notifier) BidQueued(ctx context.Context, link *domain.Link, c *domain.Campaign) error {
	ev := n.event("bid_queued", link)
	ev.CampaignID = c.ID
	bid := c.Bid
	ev.Amount = &bid
	return n.send(ctx, ev)
}

func (n *Notifier) Refunded(ctx context.Context, link *domain.Link, c *domain.Campaign, amount decimal.Decimal) error {
	ev := n.event("refunded", link)
	ev.CampaignID = c.ID
	ev.Amount = &amount
	return n.send(ctx, ev)
}

func (n *Notifier) event(kind string, link *domain.Link) Notification {
	return Notification{
		ID:       uuid.New(),
		Kind:     kind,
		LinkID:   link.ID,
		AuthorID: link.AuthorID,
		At:       n.now().UTC(),
	}
}

func (n *Notifier) send(ctx context.Context, ev Notification) error {
	msg, err := encodeNotification(ev)
	if err != nil {
		return err
	}
	if err = n.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("send %s notification for link %d: %w", ev.Kind, ev.LinkID, err)
	}
	return nil
}

func encodeNotification(ev Notification) (kafka.Message, error) {
	value, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode %s notification: %w", ev.Kind, err)
	}
	return kafka.Message{Key: []byte(strconv.FormatInt(ev.LinkID, 10)), Value: value}, nil
}
