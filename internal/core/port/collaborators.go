package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"mesa-promote/internal/core/domain"
)

// AuthRequest carries the parameters of a gateway authorization.
type AuthRequest struct {
	Amount     decimal.Decimal
	Payer      domain.Account
	ProfileID  int64 // FreebieProfile for complimentary runs
	LinkID     int64
	CampaignID int64
}

// FreebieProfile is the payment profile id used for complimentary runs.
const FreebieProfile int64 = -1

// PaymentGateway authorizes, charges, voids and refunds campaign
// transactions. Faults are returned as *domain.GatewayError; a declined
// authorization is (0, reason, nil) and a declined charge or refund is
// (false, nil).
type PaymentGateway interface {
	Authorize(ctx context.Context, req AuthRequest) (transactionID int64, reason string, err error)
	Void(ctx context.Context, payer domain.Account, transactionID, campaignID int64) error
	Charge(ctx context.Context, payer domain.Account, transactionID, campaignID int64) (bool, error)
	Refund(ctx context.Context, payer domain.Account, transactionID, campaignID int64, amount decimal.Decimal) (bool, error)
	IsCharged(ctx context.Context, transactionID, campaignID int64) (bool, error)
}

// DailyImpressions is the delivered impression count of one tracking bucket.
type DailyImpressions struct {
	Date  time.Time
	Count int64
}

// Traffic reads delivery tracking data.
type Traffic interface {
	// DeliveredImpressions returns the impressions a campaign delivered
	// between start and end.
	DeliveredImpressions(ctx context.Context, campaignID int64, start, end time.Time) ([]DailyImpressions, error)
	// MissingCoverage lists the windows between start and end that have not
	// been processed yet.
	MissingCoverage(ctx context.Context, start, end time.Time) ([]domain.Gap, error)
}

// Notifier sends fire-and-forget notifications on lifecycle transitions.
// Callers log and otherwise ignore returned errors.
type Notifier interface {
	Accepted(ctx context.Context, link *domain.Link) error
	Rejected(ctx context.Context, link *domain.Link, reason string) error
	Live(ctx context.Context, link *domain.Link) error
	Finished(ctx context.Context, link *domain.Link) error
	BidQueued(ctx context.Context, link *domain.Link, c *domain.Campaign) error
	Refunded(ctx context.Context, link *domain.Link, c *domain.Campaign, amount decimal.Decimal) error
}

// Queue publishes update-queue messages.
type Queue interface {
	Publish(ctx context.Context, msg domain.Message) error
}

// LiveSetStore holds the published per-audience live sets.
type LiveSetStore interface {
	// ReplaceAll swaps the whole published structure. Readers observe either
	// the previous or the new set for every key, never a mix. Keys absent
	// from sets are removed.
	ReplaceAll(ctx context.Context, sets map[string][]domain.AdWeight) error
	// Get returns the live sets stored under keys. Unknown keys are absent
	// from the result.
	Get(ctx context.Context, keys []string) (map[string][]domain.AdWeight, error)
}

// HealthSignal records the last successful publish for monitoring.
type HealthSignal interface {
	MarkUpdated(ctx context.Context, at time.Time) error
	LastUpdated(ctx context.Context) (time.Time, error)
}

// LinkLocker serializes edits and billing on one link. Locks on different
// links never block each other.
type LinkLocker interface {
	Lock(ctx context.Context, linkID int64) (unlock func(), err error)
}
