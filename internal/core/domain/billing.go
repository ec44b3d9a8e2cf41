package domain

import "github.com/shopspring/decimal"

const centPlaces = 2

var (
	thousand = decimal.NewFromInt(1000)
	hundred  = decimal.NewFromInt(100)
)

// BillableAmount returns what a campaign earned for the given delivered
// impressions. Flat campaigns always earn their full bid. CPM campaigns earn
// impressions/1000 * rate, capped at the bid and rounded down to the cent.
func BillableAmount(c *Campaign, impressions int64) decimal.Decimal {
	if c.Pricing != PricingCPM {
		return c.Bid.RoundFloor(centPlaces)
	}
	if impressions < 0 {
		impressions = 0
	}
	delivered := decimal.NewFromInt(impressions).
		Div(thousand).
		Mul(decimal.NewFromInt(c.CPMRate).Div(hundred))
	return decimal.Min(c.Bid, delivered).RoundFloor(centPlaces)
}

// RefundAmount returns the part of the charge that was not earned: bid minus
// any refund already issued minus billable, rounded up to the cent and never
// negative.
func RefundAmount(c *Campaign, billable decimal.Decimal) decimal.Decimal {
	existing := decimal.Zero
	if c.RefundAmount != nil {
		existing = *c.RefundAmount
	}
	refund := c.Bid.Sub(existing).Sub(billable).RoundCeil(centPlaces)
	if refund.IsNegative() {
		return decimal.Zero
	}
	return refund
}

// SpentAmount returns the amount the advertiser pays for a campaign given
// the current billable amount.
func SpentAmount(c *Campaign, billable decimal.Decimal) decimal.Decimal {
	switch {
	case c.RefundAmount != nil:
		return c.Bid.Sub(*c.RefundAmount)
	case c.Pricing != PricingCPM:
		return c.Bid
	default:
		return billable
	}
}

// CostPerMille returns the cost per thousand impressions.
func CostPerMille(spend decimal.Decimal, impressions int64) decimal.Decimal {
	if impressions == 0 {
		return decimal.Zero
	}
	return spend.Mul(thousand).Div(decimal.NewFromInt(impressions))
}

// ImpressionFuzz is the granularity of impression counts shown to
// advertisers.
const ImpressionFuzz = 500

// FuzzImpressions rounds an impression count down to the nearest multiple,
// for display to advertisers.
func FuzzImpressions(impressions, multiple int64) int64 {
	if impressions <= 0 || multiple <= 0 {
		return 0
	}
	return impressions / multiple * multiple
}

// BillingReport is the advertiser's view of what a campaign has cost so far.
// Impressions are fuzzed; CPM is computed from the exact count.
type BillingReport struct {
	CampaignID   int64            `json:"campaign_id"`
	Bid          decimal.Decimal  `json:"bid"`
	Spent        decimal.Decimal  `json:"spent"`
	Impressions  int64            `json:"impressions"`
	CPM          decimal.Decimal  `json:"cpm"`
	RefundAmount *decimal.Decimal `json:"refund_amount,omitempty"`
}
