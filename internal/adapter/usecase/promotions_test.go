package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-promote/internal/core/domain"
	"mesa-promote/internal/core/port"
)

func TestNewCampaignCompsComplimentaryAuthor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.PutAccount(domain.Account{ID: 100, Name: "friend", Complimentary: true})
	f.addLink(1, 100, domain.StatusUnpaid)

	f.gateway.EXPECT().
		Authorize(ctx, mock.MatchedBy(func(req port.AuthRequest) bool { return req.ProfileID == port.FreebieProfile })).
		Return(domain.FreebieTransaction, "", nil)

	c, err := f.promotions.NewCampaign(ctx, 1, domain.CampaignParams{
		Audience:  "cats",
		StartDate: tomorrow,
		EndDate:   tomorrow.AddDate(0, 0, 2),
		Bid:       dec("30"),
		Pricing:   domain.PricingCPM,
		CPMRate:   250,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.FreebieTransaction, c.TransactionID)
	assert.Equal(t, int64(100), c.OwnerID)

	weights, err := f.store.WeightsOverlapping(ctx, tomorrow, tomorrow)
	require.NoError(t, err)
	require.Len(t, weights, 1)
	assert.Equal(t, c.ID, weights[0].CampaignID)
	assert.Equal(t, 30.0, weights[0].Weight)

	link, _ := f.store.Link(ctx, 1)
	assert.Equal(t, domain.StatusUnseen, link.Status)
	assert.Contains(t, f.store.Logs(1), "FREEBIE (campaign: 1)")
}

func TestNewCampaignRejectsInvalidParams(t *testing.T) {
	f := newFixture(t)
	f.addLink(1, 100, domain.StatusUnpaid)

	_, err := f.promotions.NewCampaign(context.Background(), 1, domain.CampaignParams{
		StartDate: tomorrow,
		EndDate:   today,
		Bid:       dec("30"),
		Pricing:   domain.PricingFlat,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidData)
}

func TestNewCampaignNormalizesAudienceAndRequiresPricing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addLink(1, 100, domain.StatusUnpaid)

	params := domain.CampaignParams{Audience: " Cats ", StartDate: tomorrow, EndDate: tomorrow, Bid: dec("30")}
	_, err := f.promotions.NewCampaign(ctx, 1, params)
	assert.ErrorIs(t, err, domain.ErrInvalidData)

	params.Pricing = domain.PricingFlat
	c, err := f.promotions.NewCampaign(ctx, 1, params)
	require.NoError(t, err)
	assert.Equal(t, "cats", c.Audience)
}

func TestEditCampaignVoidsOnBidChange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addLink(1, 100, domain.StatusAccepted)
	f.addCampaign(domain.Campaign{ID: 10, LinkID: 1, StartDate: tomorrow, EndDate: tomorrow, Pricing: domain.PricingCPM, TransactionID: 5})
	f.store.PutTransaction(domain.Transaction{ID: 5, LinkID: 1, CampaignID: 10, State: domain.TransactionAuthorized})
	f.gateway.EXPECT().Void(ctx, mock.Anything, int64(5), int64(10)).Return(nil).Once()

	params := domain.CampaignParams{StartDate: tomorrow, EndDate: tomorrow.AddDate(0, 0, 1), Bid: dec("120"), Pricing: domain.PricingCPM, CPMRate: 500}
	c, err := f.promotions.EditCampaign(ctx, 10, params)
	require.NoError(t, err)
	assert.True(t, c.Bid.Equal(dec("120")))

	weights, err := f.store.WeightsOverlapping(ctx, tomorrow, tomorrow.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, weights, 1)
	assert.Equal(t, 120.0, weights[0].Weight)
	assert.Equal(t, tomorrow.AddDate(0, 0, 1), weights[0].EndDate)

	// same bid again: nothing to void
	_, err = f.promotions.EditCampaign(ctx, 10, params)
	require.NoError(t, err)
}

func TestAuthorizeCampaignRefusesFlat(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addLink(1, 100, domain.StatusUnpaid)
	f.addCampaign(domain.Campaign{ID: 10, LinkID: 1, StartDate: tomorrow, EndDate: tomorrow, Pricing: domain.PricingFlat})

	_, err := f.promotions.AuthorizeCampaign(ctx, 10, 100, 7)
	assert.ErrorIs(t, err, domain.ErrInvalidData)
	c, _ := f.store.Campaign(ctx, 10)
	assert.Equal(t, domain.NoTransaction, c.TransactionID)
}

func TestDeleteCampaign(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addLink(1, 100, domain.StatusAccepted)
	f.addCampaign(domain.Campaign{ID: 10, LinkID: 1, StartDate: tomorrow, EndDate: tomorrow, Pricing: domain.PricingCPM, TransactionID: 5})
	f.store.PutTransaction(domain.Transaction{ID: 5, LinkID: 1, CampaignID: 10, State: domain.TransactionAuthorized})
	f.gateway.EXPECT().Void(ctx, mock.Anything, int64(5), int64(10)).Return(nil).Once()

	require.NoError(t, f.promotions.DeleteCampaign(ctx, 10))

	_, err := f.store.Campaign(ctx, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	weights, _ := f.store.WeightsOverlapping(ctx, tomorrow, tomorrow)
	assert.Empty(t, weights)
	assert.Contains(t, f.store.Logs(1), "deleted campaign 10")
}

func TestAcceptPromotionForcesLiveCampaigns(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addLink(1, 100, domain.StatusUnseen)
	f.addCampaign(domain.Campaign{ID: 10, LinkID: 1, StartDate: today, EndDate: today, Pricing: domain.PricingCPM, TransactionID: 5})
	fakeCharges(f)
	f.notifier.EXPECT().BidQueued(ctx, mock.Anything, mock.Anything).Return(nil).Once()
	f.notifier.EXPECT().Accepted(ctx, mock.Anything).Return(nil).Once()
	f.queue.EXPECT().Publish(ctx, mock.MatchedBy(func(m domain.Message) bool {
		return m.Kind == domain.MessageLinkChanged && m.LinkID == 1 && m.Reason == "accepted"
	})).Return(nil).Once()

	require.NoError(t, f.promotions.AcceptPromotion(ctx, 1))

	link, _ := f.store.Link(ctx, 1)
	assert.Equal(t, domain.StatusPending, link.Status)
	assert.Contains(t, f.store.Logs(1), "has live campaigns, forcing live")
}

func TestAcceptPromotionWithoutLiveCampaigns(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.PutLink(domain.Link{ID: 1, AuthorID: 100, Status: domain.StatusUnseen, Rejected: true})
	f.notifier.EXPECT().Accepted(ctx, mock.Anything).Return(nil).Once()

	require.NoError(t, f.promotions.AcceptPromotion(ctx, 1))
	link, _ := f.store.Link(ctx, 1)
	assert.Equal(t, domain.StatusAccepted, link.Status)
	assert.False(t, link.Rejected)
}

func TestAcceptPromotionNeverLowersStatus(t *testing.T) {
	for _, status := range []domain.PromoteStatus{domain.StatusPending, domain.StatusPromoted, domain.StatusFinished} {
		t.Run(status.String(), func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			f.addLink(1, 100, status)
			f.notifier.EXPECT().Accepted(ctx, mock.Anything).Return(nil).Once()

			require.NoError(t, f.promotions.AcceptPromotion(ctx, 1))
			link, _ := f.store.Link(ctx, 1)
			assert.Equal(t, status, link.Status)
		})
	}
}

func TestRejectPromotionTakesDownLiveLink(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addLink(1, 100, domain.StatusPromoted)
	require.NoError(t, f.live.ReplaceAll(ctx, map[string][]domain.AdWeight{
		domain.AllAdsKey: {{LinkID: 1, CampaignID: 10, Weight: 1}},
	}))
	f.queue.EXPECT().Publish(ctx, mock.MatchedBy(func(m domain.Message) bool {
		return m.Kind == domain.MessageLinkChanged && m.LinkID == 1 && m.Reason == "rejected"
	})).Return(nil).Once()
	f.notifier.EXPECT().Rejected(ctx, mock.Anything, "spam").Return(nil).Once()

	require.NoError(t, f.promotions.RejectPromotion(ctx, 1, "spam"))

	link, _ := f.store.Link(ctx, 1)
	assert.True(t, link.Rejected)
	assert.False(t, link.IsAccepted())

	require.NoError(t, f.promotions.UnapprovePromotion(ctx, 1))
	link, _ = f.store.Link(ctx, 1)
	assert.False(t, link.Rejected)
	assert.Equal(t, domain.StatusUnseen, link.Status)
}

func TestIsLiveOn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addLink(1, 100, domain.StatusPromoted)
	f.addCampaign(domain.Campaign{ID: 10, LinkID: 1, Audience: "Cats", StartDate: today, EndDate: today, Pricing: domain.PricingFlat})

	live, err := f.promotions.IsLiveOn(ctx, 1, "cats")
	require.NoError(t, err)
	assert.True(t, live)

	live, err = f.promotions.IsLiveOn(ctx, 1, "")
	require.NoError(t, err)
	assert.False(t, live)

	f.addLink(2, 100, domain.StatusAccepted)
	live, err = f.promotions.IsLiveOn(ctx, 2, "cats")
	require.NoError(t, err)
	assert.False(t, live)
}
