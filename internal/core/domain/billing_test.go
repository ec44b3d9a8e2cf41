package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestBillableAndRefund(t *testing.T) {
	tests := []struct {
		name        string
		campaign    Campaign
		impressions int64
		billable    string
		refund      string
	}{
		{
			name:        "underdelivered cpm",
			campaign:    Campaign{Bid: d("100"), Pricing: PricingCPM, CPMRate: 500},
			impressions: 15000,
			billable:    "75",
			refund:      "25",
		},
		{
			name:        "overdelivered cpm is capped at the bid",
			campaign:    Campaign{Bid: d("100"), Pricing: PricingCPM, CPMRate: 500},
			impressions: 1_000_000,
			billable:    "100",
			refund:      "0",
		},
		{
			name:        "no traffic refunds everything",
			campaign:    Campaign{Bid: d("12.34"), Pricing: PricingCPM, CPMRate: 250},
			impressions: 0,
			billable:    "0",
			refund:      "12.34",
		},
		{
			name:        "fractional cents round in the advertiser's favour",
			campaign:    Campaign{Bid: d("10"), Pricing: PricingCPM, CPMRate: 333},
			impressions: 1001,
			billable:    "3.33",
			refund:      "6.67",
		},
		{
			name:        "flat always bills the bid",
			campaign:    Campaign{Bid: d("40"), Pricing: PricingFlat},
			impressions: 3,
			billable:    "40",
			refund:      "0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			billable := BillableAmount(&tt.campaign, tt.impressions)
			assert.True(t, billable.Equal(d(tt.billable)), "billable %s", billable)
			refund := RefundAmount(&tt.campaign, billable)
			assert.True(t, refund.Equal(d(tt.refund)), "refund %s", refund)
		})
	}
}

func TestRefundAmountAccountsForPriorRefund(t *testing.T) {
	prior := d("30")
	c := Campaign{Bid: d("100"), Pricing: PricingCPM, CPMRate: 500, RefundAmount: &prior}

	assert.True(t, RefundAmount(&c, d("50")).Equal(d("20")))
	assert.True(t, RefundAmount(&c, d("90")).IsZero())
	assert.True(t, SpentAmount(&c, d("50")).Equal(d("70")))
}

func TestCostMetrics(t *testing.T) {
	assert.True(t, CostPerMille(d("75"), 15000).Equal(d("5")))
	assert.True(t, CostPerMille(d("75"), 0).IsZero())
	assert.Equal(t, int64(15000), FuzzImpressions(15432, ImpressionFuzz))
	assert.Zero(t, FuzzImpressions(-5, 1000))
}

func TestCampaignValidate(t *testing.T) {
	day := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	valid := Campaign{ID: 1, StartDate: day, EndDate: day.AddDate(0, 0, 2), Bid: d("10"), Pricing: PricingCPM, CPMRate: 100}
	require.NoError(t, valid.Validate())
	assert.Equal(t, 3, valid.Days())
	assert.True(t, valid.Covers(day.AddDate(0, 0, 2)))
	assert.False(t, valid.Covers(day.AddDate(0, 0, 3)))

	broken := valid
	broken.EndDate = day.AddDate(0, 0, -1)
	assert.ErrorIs(t, broken.Validate(), ErrInvalidData)

	broken = valid
	broken.CPMRate = 0
	assert.ErrorIs(t, broken.Validate(), ErrInvalidData)

	tooMuch := d("11")
	broken = valid
	broken.RefundAmount = &tooMuch
	assert.ErrorIs(t, broken.Validate(), ErrInvalidData)
}

func TestBillableAmountMonotonicAndCapped(t *testing.T) {
	prior := d("7.77")
	for _, c := range []Campaign{
		{Bid: d("100"), Pricing: PricingCPM, CPMRate: 500},
		{Bid: d("12.34"), Pricing: PricingCPM, CPMRate: 333},
		{Bid: d("100"), Pricing: PricingCPM, CPMRate: 500, RefundAmount: &prior},
		{Bid: d("50"), Pricing: PricingFlat},
	} {
		remaining := c.Bid
		if c.RefundAmount != nil {
			remaining = remaining.Sub(*c.RefundAmount)
		}
		prev := BillableAmount(&c, 0)
		for i := int64(0); i <= 25_000; i += 37 {
			billable := BillableAmount(&c, i)
			require.True(t, billable.GreaterThanOrEqual(prev), "impressions %d: %s < %s", i, billable, prev)
			require.True(t, billable.LessThanOrEqual(c.Bid), "impressions %d: %s above bid", i, billable)
			if c.Pricing == PricingFlat {
				require.True(t, billable.Equal(c.Bid))
			}

			refund := RefundAmount(&c, billable)
			require.False(t, refund.IsNegative(), "impressions %d: negative refund %s", i, refund)
			require.True(t, refund.LessThanOrEqual(remaining), "impressions %d: refund %s above %s", i, refund, remaining)
			prev = billable
		}
	}
}
