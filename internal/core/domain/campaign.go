package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PricingMode says how a campaign is billed.
type PricingMode string

const (
	// PricingCPM campaigns are charged up front and refunded for underdelivery.
	PricingCPM PricingMode = "cpm"
	// PricingFlat campaigns are never charged through the gateway and always
	// bill the full bid.
	PricingFlat PricingMode = "flat"
)

// Valid reports whether m is a known pricing mode.
func (m PricingMode) Valid() bool { return m == PricingCPM || m == PricingFlat }

const (
	// NoTransaction means the campaign has not been authorized.
	NoTransaction int64 = 0
	// FreebieTransaction marks a complimentary run with no real charge.
	FreebieTransaction int64 = -1
)

// Campaign is a bounded run of a promoted link against one audience. Dates
// are date-only values (00:00 UTC) naming promotion days; the range is
// inclusive. Money is kept in currency units with cent precision.
type Campaign struct {
	ID            int64
	LinkID        int64
	OwnerID       int64
	Audience      string // empty targets every audience
	StartDate     time.Time
	EndDate       time.Time
	Bid           decimal.Decimal
	Pricing       PricingMode
	CPMRate       int64 // cents per thousand impressions
	Priority      string
	TransactionID int64
	// RefundAmount is set exactly once, when the campaign is finalized.
	RefundAmount *decimal.Decimal
}

// NeedsCharge reports whether the campaign must be charged before it runs.
func (c *Campaign) NeedsCharge() bool { return c.Pricing == PricingCPM }

// IsFreebie reports whether the campaign runs on a complimentary transaction.
func (c *Campaign) IsFreebie() bool { return c.TransactionID == FreebieTransaction }

// IsFinalized reports whether billing for the campaign has been settled.
func (c *Campaign) IsFinalized() bool { return c.RefundAmount != nil }

// HasRealTransaction reports whether a paid gateway transaction backs the run.
func (c *Campaign) HasRealTransaction() bool { return c.TransactionID > 0 }

// Days returns the number of promotion days the campaign covers.
func (c *Campaign) Days() int {
	return int(c.EndDate.Sub(c.StartDate).Hours()/24) + 1
}

// Covers reports whether the campaign runs on the given promotion date.
func (c *Campaign) Covers(day time.Time) bool {
	return !day.Before(c.StartDate) && !day.After(c.EndDate)
}

// Validate checks the invariants a stored campaign must hold.
func (c *Campaign) Validate() error {
	switch {
	case !c.Pricing.Valid():
		return fmt.Errorf("%w: campaign %d has pricing mode %q", ErrInvalidData, c.ID, c.Pricing)
	case c.EndDate.Before(c.StartDate):
		return fmt.Errorf("%w: campaign %d ends before it starts", ErrInvalidData, c.ID)
	case !c.Bid.IsPositive():
		return fmt.Errorf("%w: campaign %d has non-positive bid %s", ErrInvalidData, c.ID, c.Bid)
	case c.Pricing == PricingCPM && c.CPMRate <= 0:
		return fmt.Errorf("%w: cpm campaign %d has no cpm rate", ErrInvalidData, c.ID)
	case c.TransactionID < FreebieTransaction:
		return fmt.Errorf("%w: campaign %d has transaction id %d", ErrInvalidData, c.ID, c.TransactionID)
	case c.RefundAmount != nil && (c.RefundAmount.IsNegative() || c.RefundAmount.GreaterThan(c.Bid)):
		return fmt.Errorf("%w: campaign %d refund %s outside [0, %s]", ErrInvalidData, c.ID, c.RefundAmount, c.Bid)
	}
	return nil
}

// ScheduledWeight says a campaign competes on an audience over a date range
// with the given weight. It is edited independently of the campaign's
// billing state and reconciled at run time.
type ScheduledWeight struct {
	CampaignID int64
	LinkID     int64
	Audience   string
	StartDate  time.Time
	EndDate    time.Time
	Weight     float64
}

// Covers reports whether the weight record applies on the given day.
func (w ScheduledWeight) Covers(day time.Time) bool {
	return !day.Before(w.StartDate) && !day.After(w.EndDate)
}

// AdWeight is one entry in a published live set.
type AdWeight struct {
	LinkID     int64   `json:"link"`
	CampaignID int64   `json:"campaign"`
	Audience   string  `json:"audience"`
	Weight     float64 `json:"weight"`
}

// TransactionState is the gateway-side state of a transaction.
type TransactionState string

const (
	TransactionAuthorized TransactionState = "authorized"
	TransactionCharged    TransactionState = "charged"
	TransactionVoided     TransactionState = "voided"
	TransactionRefunded   TransactionState = "refunded"
)

// Transaction mirrors the gateway record for a campaign. The core reads it
// but never owns it.
type Transaction struct {
	ID         int64
	LinkID     int64
	CampaignID int64
	Amount     decimal.Decimal
	State      TransactionState
}

// IsVoid reports whether nothing remains to be voided.
func (t *Transaction) IsVoid() bool { return t.State == TransactionVoided }

// CampaignParams are the advertiser-editable fields of a campaign.
type CampaignParams struct {
	Audience  string
	StartDate time.Time
	EndDate   time.Time
	Bid       decimal.Decimal
	Pricing   PricingMode
	CPMRate   int64
	Priority  string
}

// Apply copies the params onto c, truncating the dates to date-only values
// and normalizing the audience name.
func (p CampaignParams) Apply(c *Campaign) {
	c.Audience = NormalizeAudience(p.Audience)
	c.StartDate = dateOnly(p.StartDate)
	c.EndDate = dateOnly(p.EndDate)
	c.Bid = p.Bid
	c.Pricing = p.Pricing
	c.CPMRate = p.CPMRate
	c.Priority = p.Priority
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AuthResult is the outcome of an authorization. A decline is not an error.
type AuthResult struct {
	OK            bool   `json:"ok"`
	TransactionID int64  `json:"transaction_id"`
	Reason        string `json:"reason,omitempty"`
}
