package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-promote/internal/core/domain"
)

// TestScheduleSkipsUnauthorizedCPM checks that a cpm campaign without a
// transaction is left out without being reported as an error.
func TestScheduleSkipsUnauthorizedCPM(t *testing.T) {
	f := newFixture(t)
	f.addLink(1, 100, domain.StatusAccepted)
	f.addCampaign(domain.Campaign{ID: 10, LinkID: 1, Audience: "cats", StartDate: today, EndDate: today, Pricing: domain.PricingCPM})

	sched, err := f.scheduler.ComputeSchedule(context.Background(), today, nil)
	require.NoError(t, err)
	assert.Zero(t, sched.Len())
	assert.Empty(t, sched.Errors)
}

func TestScheduleGroupsByAudience(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addLink(1, 100, domain.StatusAccepted)
	f.addLink(2, 100, domain.StatusPromoted)
	f.addLink(3, 100, domain.StatusUnseen)
	f.addLink(4, 100, domain.StatusPromoted)
	f.store.PutLink(domain.Link{ID: 4, AuthorID: 100, Status: domain.StatusPromoted, Rejected: true})

	f.addCampaign(domain.Campaign{ID: 10, LinkID: 1, StartDate: yesterday, EndDate: tomorrow, Pricing: domain.PricingFlat})
	f.addCampaign(domain.Campaign{ID: 11, LinkID: 2, Audience: "cats", StartDate: today, EndDate: today, Pricing: domain.PricingCPM, TransactionID: 501})
	f.addCampaign(domain.Campaign{ID: 12, LinkID: 2, Audience: "dogs", StartDate: today, EndDate: today, Pricing: domain.PricingCPM, TransactionID: 502})
	f.addCampaign(domain.Campaign{ID: 13, LinkID: 3, StartDate: today, EndDate: today, Pricing: domain.PricingFlat})
	f.addCampaign(domain.Campaign{ID: 14, LinkID: 4, StartDate: today, EndDate: today, Pricing: domain.PricingFlat})
	f.addCampaign(domain.Campaign{ID: 15, LinkID: 1, Audience: "fish", StartDate: today, EndDate: today, Pricing: domain.PricingCPM, TransactionID: domain.FreebieTransaction})
	// not running today
	f.addCampaign(domain.Campaign{ID: 16, LinkID: 1, StartDate: tomorrow, EndDate: tomorrow, Pricing: domain.PricingFlat})

	f.gateway.EXPECT().IsCharged(ctx, int64(501), int64(11)).Return(true, nil)
	f.gateway.EXPECT().IsCharged(ctx, int64(502), int64(12)).Return(false, nil)

	sched, err := f.scheduler.ComputeSchedule(ctx, today, nil)
	require.NoError(t, err)
	assert.Empty(t, sched.Errors)

	assert.Equal(t, []domain.AdWeight{{LinkID: 1, CampaignID: 10, Weight: 100}}, sched.ByAudience[""])
	assert.Equal(t, []domain.AdWeight{{LinkID: 2, CampaignID: 11, Audience: "cats", Weight: 100}}, sched.ByAudience["cats"])
	assert.Equal(t, []domain.AdWeight{{LinkID: 1, CampaignID: 15, Audience: "fish", Weight: 100}}, sched.ByAudience["fish"])
	assert.NotContains(t, sched.ByAudience, "dogs")
	assert.Equal(t, 3, sched.Len())
	assert.Len(t, sched.Links, 2)
}

// TestScheduleCollectsRecordErrors checks that broken records are reported
// without hiding valid campaigns.
func TestScheduleCollectsRecordErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	fault := &domain.GatewayError{Op: "is_charged", Err: errors.New("connection reset")}

	f.addLink(1, 100, domain.StatusAccepted)
	f.addCampaign(domain.Campaign{ID: 10, LinkID: 1, StartDate: today, EndDate: today, Pricing: domain.PricingFlat})
	f.addCampaign(domain.Campaign{ID: 11, LinkID: 1, StartDate: today, EndDate: today, Pricing: "bogus"})
	f.addCampaign(domain.Campaign{ID: 12, LinkID: 1, StartDate: today, EndDate: today, Pricing: domain.PricingCPM, TransactionID: 7})
	// weight without a campaign is skipped silently
	require.NoError(t, f.store.AddWeight(ctx, domain.ScheduledWeight{CampaignID: 99, LinkID: 1, StartDate: today, EndDate: today, Weight: 1}))

	f.gateway.EXPECT().IsCharged(ctx, int64(7), int64(12)).Return(false, fault)

	sched, err := f.scheduler.ComputeSchedule(ctx, today, nil)
	require.NoError(t, err)
	assert.Equal(t, []domain.AdWeight{{LinkID: 1, CampaignID: 10, Weight: 100}}, sched.ByAudience[""])

	require.Len(t, sched.Errors, 2)
	ids := []int64{sched.Errors[0].CampaignID, sched.Errors[1].CampaignID}
	assert.ElementsMatch(t, []int64{11, 12}, ids)
	for _, ce := range sched.Errors {
		switch ce.CampaignID {
		case 11:
			assert.ErrorIs(t, ce.Err, domain.ErrInvalidData)
		case 12:
			var gwErr *domain.GatewayError
			assert.ErrorAs(t, ce.Err, &gwErr)
		}
	}
}

func TestScheduleFiltersAudiences(t *testing.T) {
	f := newFixture(t)
	f.addLink(1, 100, domain.StatusAccepted)
	f.addCampaign(domain.Campaign{ID: 10, LinkID: 1, StartDate: today, EndDate: today, Pricing: domain.PricingFlat})
	f.addCampaign(domain.Campaign{ID: 11, LinkID: 1, Audience: "cats", StartDate: today, EndDate: today, Pricing: domain.PricingFlat})

	sched, err := f.scheduler.ComputeSchedule(context.Background(), today, []string{"cats"})
	require.NoError(t, err)
	assert.Len(t, sched.ByAudience, 1)
	assert.Len(t, sched.ByAudience["cats"], 1)
}

func TestLiveCampaignIDs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addLink(1, 100, domain.StatusPromoted)
	f.addCampaign(domain.Campaign{ID: 10, LinkID: 1, StartDate: today, EndDate: today, Pricing: domain.PricingFlat})
	f.addCampaign(domain.Campaign{ID: 11, LinkID: 1, StartDate: today, EndDate: today, Pricing: domain.PricingCPM, TransactionID: 3})
	f.addCampaign(domain.Campaign{ID: 12, LinkID: 1, StartDate: tomorrow, EndDate: tomorrow, Pricing: domain.PricingFlat})

	f.gateway.EXPECT().IsCharged(ctx, int64(3), int64(11)).Return(false, nil)

	link, err := f.store.Link(ctx, 1)
	require.NoError(t, err)
	live, err := f.scheduler.LiveCampaignIDs(ctx, link, today)
	require.NoError(t, err)
	assert.Equal(t, []int64{10}, live)

	link.Reject()
	live, err = f.scheduler.LiveCampaignIDs(ctx, link, today)
	require.NoError(t, err)
	assert.Empty(t, live)
}
