package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"mesa-promote/internal/adapter/memory"
	"mesa-promote/internal/core/calendar"
	"mesa-promote/internal/core/domain"
	"mesa-promote/internal/core/port/mocks"
)

// 15:00 UTC is 10:00 on promotion day 2024-03-10.
var testNow = time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var (
	today     = date(2024, 3, 10)
	yesterday = date(2024, 3, 9)
	tomorrow  = date(2024, 3, 11)
)

type fixture struct {
	store  *memory.CampaignStore
	live   *memory.LiveSetStore
	health *memory.HealthSignal
	locker *memory.LinkLocker

	gateway  *mocks.MockPaymentGateway
	traffic  *mocks.MockTraffic
	notifier *mocks.MockNotifier
	queue    *mocks.MockQueue

	cal          *calendar.Calendar
	scheduler    *Scheduler
	billing      *Billing
	publisher    *Publisher
	orchestrator *Orchestrator
	promotions   *Promotions
	selector     *AdSelector
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := &fixture{
		store:    memory.NewCampaignStore(),
		live:     memory.NewLiveSetStore(),
		health:   memory.NewHealthSignal(),
		locker:   memory.NewLinkLocker(),
		gateway:  mocks.NewMockPaymentGateway(t),
		traffic:  mocks.NewMockTraffic(t),
		notifier: mocks.NewMockNotifier(t),
		queue:    mocks.NewMockQueue(t),
		cal:      calendar.New(calendar.DefaultOffset, calendar.FixedClock(testNow)),
	}
	f.scheduler = NewScheduler(f.store, f.gateway, logger)
	f.billing = NewBilling(f.store, f.gateway, f.traffic, f.notifier, f.locker, f.scheduler, f.cal, logger)
	f.publisher = NewPublisher(f.store, f.live, logger)
	f.orchestrator = NewOrchestrator(f.store, f.live, f.health, f.notifier, f.locker,
		f.scheduler, f.billing, f.publisher, f.cal, logger)
	f.promotions = NewPromotions(f.store, f.live, f.queue, f.notifier, f.locker,
		f.scheduler, f.billing, f.cal, logger)
	f.selector = NewAdSelector(f.live, f.health, f.queue, f.cal, 10)
	return f
}

func (f *fixture) addLink(id, author int64, status domain.PromoteStatus) {
	f.store.PutLink(domain.Link{ID: id, AuthorID: author, Title: "link", Status: status})
	if _, err := f.store.Account(context.Background(), author); err != nil {
		f.store.PutAccount(domain.Account{ID: author, Name: "advertiser"})
	}
}

// addCampaign stores a campaign and its schedule weight.
func (f *fixture) addCampaign(c domain.Campaign) domain.Campaign {
	if c.OwnerID == 0 {
		c.OwnerID = 100
	}
	if c.Pricing == domain.PricingCPM && c.CPMRate == 0 {
		c.CPMRate = 500
	}
	if c.Bid.IsZero() {
		c.Bid = decimal.NewFromInt(100)
	}
	f.store.PutCampaign(c)
	if _, err := f.store.Account(context.Background(), c.OwnerID); err != nil {
		f.store.PutAccount(domain.Account{ID: c.OwnerID, Name: "owner"})
	}
	_ = f.store.AddWeight(context.Background(), domain.ScheduledWeight{
		CampaignID: c.ID,
		LinkID:     c.LinkID,
		Audience:   c.Audience,
		StartDate:  c.StartDate,
		EndDate:    c.EndDate,
		Weight:     c.Bid.InexactFloat64(),
	})
	return c
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decEq(want string) func(decimal.Decimal) bool {
	w := dec(want)
	return func(d decimal.Decimal) bool { return d.Equal(w) }
}
