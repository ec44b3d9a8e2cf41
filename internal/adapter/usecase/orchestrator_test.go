package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-promote/internal/core/domain"
)

func TestRunPromotesAndFinishes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// link 1 starts today; link 2 was live and has nothing scheduled anymore
	f.addLink(1, 100, domain.StatusAccepted)
	f.addLink(2, 100, domain.StatusPromoted)
	f.addCampaign(domain.Campaign{ID: 10, LinkID: 1, Audience: "nsfw", StartDate: today, EndDate: tomorrow, Pricing: domain.PricingFlat})
	f.store.PutAudience(domain.Audience{Name: "nsfw", Adult: true})
	stale := domain.AdWeight{LinkID: 2, CampaignID: 20, Weight: 1}
	require.NoError(t, f.live.ReplaceAll(ctx, map[string][]domain.AdWeight{
		domain.GlobalAudienceKey: {stale},
		domain.AllAdsKey:         {stale},
	}))

	f.notifier.EXPECT().Finished(ctx, mock.MatchedBy(func(l *domain.Link) bool { return l.ID == 2 })).Return(nil).Once()
	f.notifier.EXPECT().Live(ctx, mock.MatchedBy(func(l *domain.Link) bool { return l.ID == 1 })).Return(nil).Once()

	report, err := f.orchestrator.Run(ctx, RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, today, report.Day)
	assert.Equal(t, 1, report.Scheduled)
	assert.Equal(t, []int64{2}, report.Finished)
	assert.Equal(t, []int64{1}, report.Promoted)
	assert.Equal(t, []int64{1}, report.Adult)

	l1, _ := f.store.Link(ctx, 1)
	assert.Equal(t, domain.StatusPromoted, l1.Status)
	assert.True(t, l1.Adult)
	l2, _ := f.store.Link(ctx, 2)
	assert.Equal(t, domain.StatusFinished, l2.Status)

	got, err := f.live.Get(ctx, []string{"nsfw", domain.AllAdsKey})
	require.NoError(t, err)
	want := []domain.AdWeight{{LinkID: 1, CampaignID: 10, Audience: "nsfw", Weight: 100}}
	assert.Equal(t, want, got["nsfw"])
	assert.Equal(t, want, got[domain.AllAdsKey])

	last, err := f.health.LastUpdated(ctx)
	require.NoError(t, err)
	assert.Equal(t, testNow, last)

	// a second pass changes nothing and notifies nobody
	report, err = f.orchestrator.Run(ctx, RunOptions{})
	require.NoError(t, err)
	assert.Empty(t, report.Finished)
	assert.Empty(t, report.Promoted)
}

// TestRunReportsBadRecordsAfterPublishing checks that one broken record
// fails the pass without keeping valid campaigns off the live set.
func TestRunFlagsAdultAudienceIgnoringCase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addLink(1, 100, domain.StatusPromoted)
	f.addCampaign(domain.Campaign{ID: 10, LinkID: 1, Audience: "NSFW", StartDate: today, EndDate: today, Pricing: domain.PricingFlat})
	f.store.PutAudience(domain.Audience{Name: "nsfw", Adult: true})

	report, err := f.orchestrator.Run(ctx, RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, report.Adult)
	link, _ := f.store.Link(ctx, 1)
	assert.True(t, link.Adult)
}

func TestRunReportsBadRecordsAfterPublishing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addLink(1, 100, domain.StatusPromoted)
	f.addCampaign(domain.Campaign{ID: 10, LinkID: 1, StartDate: today, EndDate: today, Pricing: domain.PricingFlat})
	f.addCampaign(domain.Campaign{ID: 11, LinkID: 1, StartDate: today, EndDate: today, Pricing: "bogus"})

	report, err := f.orchestrator.Run(ctx, RunOptions{})
	var batch *domain.BatchError
	require.ErrorAs(t, err, &batch)
	require.Len(t, batch.Campaigns, 1)
	assert.Equal(t, int64(11), batch.Campaigns[0].CampaignID)
	assert.Equal(t, 1, report.Scheduled)

	got, err := f.live.Get(ctx, []string{domain.GlobalAudienceKey})
	require.NoError(t, err)
	assert.Len(t, got[domain.GlobalAudienceKey], 1)

	last, err := f.health.LastUpdated(ctx)
	require.NoError(t, err)
	assert.True(t, last.IsZero())
}

func TestRunFinalizesYesterday(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addLink(1, 100, domain.StatusPromoted)
	f.addCampaign(domain.Campaign{ID: 10, LinkID: 1, StartDate: yesterday, EndDate: yesterday, Pricing: domain.PricingCPM, TransactionID: 7})
	f.gateway.EXPECT().IsCharged(ctx, int64(7), int64(10)).Return(true, nil).Maybe()
	f.traffic.EXPECT().MissingCoverage(ctx, mock.Anything, mock.Anything).Return([]domain.Gap{{}}, nil)
	f.notifier.EXPECT().Finished(ctx, mock.Anything).Return(nil).Maybe()

	_, err := f.orchestrator.Run(ctx, RunOptions{})
	require.ErrorIs(t, err, domain.ErrCoverageGap)
	var batch *domain.BatchError
	require.ErrorAs(t, err, &batch)
	assert.Empty(t, batch.Campaigns)

	last, _ := f.health.LastUpdated(ctx)
	assert.True(t, last.IsZero())
}

func TestRunDryRunChangesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.addLink(1, 100, domain.StatusAccepted)
	f.addCampaign(domain.Campaign{ID: 10, LinkID: 1, StartDate: today, EndDate: today, Pricing: domain.PricingFlat})

	report, err := f.orchestrator.Run(ctx, RunOptions{DryRun: true})
	require.NoError(t, err)
	assert.True(t, report.DryRun)
	assert.Equal(t, 1, report.Scheduled)
	assert.Empty(t, report.Charges)

	l1, _ := f.store.Link(ctx, 1)
	assert.Equal(t, domain.StatusAccepted, l1.Status)
	assert.Empty(t, f.live.Keys())
}

func TestRunSchedulesOffsetDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addLink(1, 100, domain.StatusAccepted)
	f.addCampaign(domain.Campaign{ID: 10, LinkID: 1, StartDate: tomorrow, EndDate: tomorrow, Pricing: domain.PricingFlat})

	report, err := f.orchestrator.Run(ctx, RunOptions{Offset: 1, DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, tomorrow, report.Day)
	assert.Equal(t, 1, report.Scheduled)
}

func TestRunConcurrentTriggers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.addLink(1, 100, domain.StatusAccepted)
	f.addCampaign(domain.Campaign{ID: 10, LinkID: 1, StartDate: today, EndDate: today, Pricing: domain.PricingFlat})
	f.notifier.EXPECT().Live(ctx, mock.Anything).Return(nil).Once()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.orchestrator.Run(ctx, RunOptions{})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := f.live.Get(ctx, []string{domain.GlobalAudienceKey})
	require.NoError(t, err)
	assert.Len(t, got[domain.GlobalAudienceKey], 1)
}
