package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"mesa-promote/internal/core/calendar"
	"mesa-promote/internal/core/domain"
	"mesa-promote/internal/core/port"
)

// Promotions manages links and campaigns on behalf of advertisers and
// reviewers. Every mutation of a link's campaigns runs under the link lock.
type Promotions struct {
	store     port.CampaignStore
	live      port.LiveSetStore
	queue     port.Queue
	notifier  port.Notifier
	locker    port.LinkLocker
	scheduler *Scheduler
	billing   *Billing
	cal       *calendar.Calendar
	logger    *slog.Logger
}

// NewPromotions wires the promotion management service.
func NewPromotions(
	store port.CampaignStore,
	live port.LiveSetStore,
	queue port.Queue,
	notifier port.Notifier,
	locker port.LinkLocker,
	scheduler *Scheduler,
	billing *Billing,
	cal *calendar.Calendar,
	logger *slog.Logger,
) *Promotions {
	return &Promotions{
		store:     store,
		live:      live,
		queue:     queue,
		notifier:  notifier,
		locker:    locker,
		scheduler: scheduler,
		billing:   billing,
		cal:       cal,
		logger:    logger,
	}
}

// NewCampaign creates a campaign on a link together with its schedule
// weight. Campaigns of complimentary advertisers are comped right away.
func (p *Promotions) NewCampaign(ctx context.Context, linkID int64, params domain.CampaignParams) (*domain.Campaign, error) {
	var c *domain.Campaign
	err := withLinkLock(ctx, p.locker, linkID, func() error {
		link, err := p.store.Link(ctx, linkID)
		if err != nil {
			return err
		}
		c = &domain.Campaign{LinkID: link.ID, OwnerID: link.AuthorID}
		params.Apply(c)
		if err = c.Validate(); err != nil {
			return err
		}
		if err = p.store.CreateCampaign(ctx, c); err != nil {
			return fmt.Errorf("create campaign: %w", err)
		}
		if err = p.store.AddWeight(ctx, weightOf(c)); err != nil {
			return fmt.Errorf("add weight for campaign %d: %w", c.ID, err)
		}
		p.billing.audit(ctx, link.ID, "campaign %d created", c.ID)

		if c.NeedsCharge() {
			return p.compIfComplimentary(ctx, link, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// EditCampaign updates a campaign and its schedule. A bid change voids the
// pending transaction, so the campaign has to be authorized again.
func (p *Promotions) EditCampaign(ctx context.Context, campaignID int64, params domain.CampaignParams) (*domain.Campaign, error) {
	c, err := p.store.Campaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	err = withLinkLock(ctx, p.locker, c.LinkID, func() error {
		link, err := p.store.Link(ctx, c.LinkID)
		if err != nil {
			return err
		}
		if c, err = p.store.Campaign(ctx, campaignID); err != nil {
			return err
		}
		if err = p.editLocked(ctx, link, c, params); err != nil {
			p.logger.Error("update campaign",
				slog.Int64("campaign_id", c.ID),
				slog.Int64("link_id", link.ID),
				slog.Any("error", err))
			p.billing.audit(ctx, link.ID, "update FAILED. (campaign: %d, bid: %s)", c.ID, params.Bid.StringFixed(2))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (p *Promotions) editLocked(ctx context.Context, link *domain.Link, c *domain.Campaign, params domain.CampaignParams) error {
	if c.IsFinalized() {
		return domain.ErrAlreadyFinalized
	}
	next := *c
	params.Apply(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	if !c.Bid.Equal(next.Bid) {
		if err := p.billing.VoidPrior(ctx, link, c); err != nil {
			return err
		}
	}
	if err := p.store.Reschedule(ctx, weightOf(&next)); err != nil {
		return fmt.Errorf("reschedule campaign %d: %w", c.ID, err)
	}
	*c = next
	if err := p.store.UpdateCampaign(ctx, c); err != nil {
		return fmt.Errorf("update campaign %d: %w", c.ID, err)
	}
	if !c.NeedsCharge() {
		return nil
	}
	p.billing.audit(ctx, link.ID, "updated campaign %d. (bid: %s)", c.ID, c.Bid.StringFixed(2))
	return p.compIfComplimentary(ctx, link, c)
}

// DeleteCampaign removes a campaign, its unfinished schedule and its
// pending transaction.
func (p *Promotions) DeleteCampaign(ctx context.Context, campaignID int64) error {
	c, err := p.store.Campaign(ctx, campaignID)
	if err != nil {
		return err
	}
	return withLinkLock(ctx, p.locker, c.LinkID, func() error {
		link, err := p.store.Link(ctx, c.LinkID)
		if err != nil {
			return err
		}
		if err = p.store.DeleteUnfinishedWeights(ctx, c.ID, p.cal.Today()); err != nil {
			return fmt.Errorf("delete weights of campaign %d: %w", c.ID, err)
		}
		if err = p.billing.VoidPrior(ctx, link, c); err != nil {
			return err
		}
		if err = p.store.DeleteCampaign(ctx, c.ID); err != nil {
			return fmt.Errorf("delete campaign %d: %w", c.ID, err)
		}
		p.billing.audit(ctx, link.ID, "deleted campaign %d", c.ID)
		return nil
	})
}

// AuthorizeCampaign authorizes a campaign's bid against a payer's payment
// profile. Flat campaigns are billed outside the gateway and are refused.
func (p *Promotions) AuthorizeCampaign(ctx context.Context, campaignID, payerID, profileID int64) (domain.AuthResult, error) {
	c, err := p.store.Campaign(ctx, campaignID)
	if err != nil {
		return domain.AuthResult{}, err
	}
	payer, err := p.store.Account(ctx, payerID)
	if err != nil {
		return domain.AuthResult{}, err
	}
	var res domain.AuthResult
	err = withLinkLock(ctx, p.locker, c.LinkID, func() error {
		link, err := p.store.Link(ctx, c.LinkID)
		if err != nil {
			return err
		}
		if c, err = p.store.Campaign(ctx, campaignID); err != nil {
			return err
		}
		if !c.NeedsCharge() {
			return fmt.Errorf("%w: %s campaign %d is never charged", domain.ErrInvalidData, c.Pricing, c.ID)
		}
		res, err = p.billing.Authorize(ctx, link, c, *payer, profileID)
		return err
	})
	return res, err
}

// FreeCampaign authorizes a campaign as a complimentary run.
func (p *Promotions) FreeCampaign(ctx context.Context, campaignID int64) (domain.AuthResult, error) {
	c, err := p.store.Campaign(ctx, campaignID)
	if err != nil {
		return domain.AuthResult{}, err
	}
	var res domain.AuthResult
	err = withLinkLock(ctx, p.locker, c.LinkID, func() error {
		link, err := p.store.Link(ctx, c.LinkID)
		if err != nil {
			return err
		}
		if c, err = p.store.Campaign(ctx, campaignID); err != nil {
			return err
		}
		res, err = p.free(ctx, link, c)
		return err
	})
	return res, err
}

func (p *Promotions) free(ctx context.Context, link *domain.Link, c *domain.Campaign) (domain.AuthResult, error) {
	author, err := p.store.Account(ctx, link.AuthorID)
	if err != nil {
		return domain.AuthResult{}, fmt.Errorf("load account %d: %w", link.AuthorID, err)
	}
	return p.billing.Authorize(ctx, link, c, *author, port.FreebieProfile)
}

func (p *Promotions) compIfComplimentary(ctx context.Context, link *domain.Link, c *domain.Campaign) error {
	author, err := p.store.Account(ctx, link.AuthorID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load account %d: %w", link.AuthorID, err)
	}
	if !author.Complimentary {
		return nil
	}
	_, err = p.billing.Authorize(ctx, link, c, *author, port.FreebieProfile)
	return err
}

// AcceptPromotion lets a reviewed link run once its campaigns are paid. When
// the link has campaigns scheduled today they are charged and a pass is
// queued so they go live without waiting for the next run.
func (p *Promotions) AcceptPromotion(ctx context.Context, linkID int64) error {
	link, _, err := mutateLink(ctx, p.store, p.locker, linkID, func(l *domain.Link) bool {
		cleared := l.Rejected
		l.Rejected = false
		return l.Raise(domain.StatusAccepted) || cleared
	})
	if err != nil {
		return err
	}

	today := p.cal.Today()
	weights, err := p.store.WeightsOverlapping(ctx, today, today)
	if err != nil {
		return fmt.Errorf("load weights: %w", err)
	}
	scheduledNow := false
	for _, w := range weights {
		if w.LinkID == link.ID {
			scheduledNow = true
			break
		}
	}
	if scheduledNow {
		p.billing.audit(ctx, link.ID, "has live campaigns, forcing live")
		report, err := p.billing.ChargePending(ctx, today)
		if err != nil {
			return err
		}
		if len(report.Failures) > 0 {
			p.logger.Warn("charge on accept", slog.Int64("link_id", link.ID), slog.Any("failures", report.Failures))
		}
		if err = p.queue.Publish(ctx, domain.NewLinkChangedMessage(link.ID, "accepted", p.cal.Now())); err != nil {
			return fmt.Errorf("queue changed promo: %w", err)
		}
	}

	p.billing.notify("accepted", link.ID, p.notifier.Accepted(ctx, link))
	return nil
}

// RefundCampaign settles one campaign ahead of the batch finalize.
func (p *Promotions) RefundCampaign(ctx context.Context, campaignID int64) (bool, error) {
	return p.billing.RefundCampaign(ctx, campaignID)
}

// CampaignBilling reports spend, delivered impressions and CPM for a campaign.
func (p *Promotions) CampaignBilling(ctx context.Context, campaignID int64) (domain.BillingReport, error) {
	return p.billing.Report(ctx, campaignID)
}

// RejectPromotion sets the terminal rejected flag. A link that is live right
// now is taken down by a queued pass.
func (p *Promotions) RejectPromotion(ctx context.Context, linkID int64, reason string) error {
	link, _, err := mutateLink(ctx, p.store, p.locker, linkID, func(l *domain.Link) bool {
		if l.Rejected {
			return false
		}
		l.Reject()
		return true
	})
	if err != nil {
		return err
	}

	sets, err := p.live.Get(ctx, []string{domain.AllAdsKey})
	if err != nil {
		return fmt.Errorf("load live set: %w", err)
	}
	for _, aw := range sets[domain.AllAdsKey] {
		if aw.LinkID != link.ID {
			continue
		}
		p.billing.audit(ctx, link.ID, "has live campaigns, terminating")
		if err = p.queue.Publish(ctx, domain.NewLinkChangedMessage(link.ID, "rejected", p.cal.Now())); err != nil {
			return fmt.Errorf("queue changed promo: %w", err)
		}
		break
	}

	p.billing.notify("rejected", link.ID, p.notifier.Rejected(ctx, link, reason))
	return nil
}

// UnapprovePromotion clears a rejection and sends the link back to review.
func (p *Promotions) UnapprovePromotion(ctx context.Context, linkID int64) error {
	_, _, err := mutateLink(ctx, p.store, p.locker, linkID, func(l *domain.Link) bool {
		l.Reapprove()
		return true
	})
	return err
}

// IsLiveOn reports whether a promoted link has a campaign live today on the
// audience. The empty audience is the global one.
func (p *Promotions) IsLiveOn(ctx context.Context, linkID int64, audience string) (bool, error) {
	link, err := p.store.Link(ctx, linkID)
	if err != nil {
		return false, err
	}
	if !link.IsPromoted() {
		return false, nil
	}
	live, err := p.scheduler.LiveCampaignIDs(ctx, link, p.cal.Today())
	if err != nil {
		return false, err
	}
	for _, id := range live {
		c, err := p.store.Campaign(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return false, err
		}
		if strings.EqualFold(c.Audience, audience) {
			return true, nil
		}
	}
	return false, nil
}

func weightOf(c *domain.Campaign) domain.ScheduledWeight {
	return domain.ScheduledWeight{
		CampaignID: c.ID,
		LinkID:     c.LinkID,
		Audience:   c.Audience,
		StartDate:  c.StartDate,
		EndDate:    c.EndDate,
		Weight:     c.Bid.InexactFloat64(),
	}
}
