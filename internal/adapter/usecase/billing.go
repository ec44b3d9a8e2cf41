package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"mesa-promote/internal/core/calendar"
	"mesa-promote/internal/core/domain"
	"mesa-promote/internal/core/port"
	"mesa-promote/internal/metrics"
)

// ChargeReport lists what a chargePending pass did per campaign.
type ChargeReport struct {
	Day      time.Time
	Charged  []int64
	Declined []int64
	Skipped  []int64
	Failures []domain.CampaignError
}

// FinalizeReport lists what a finalize pass did per campaign.
type FinalizeReport struct {
	Day            time.Time
	Completed      []int64
	Refunded       []int64
	Underdelivered []int64
	Skipped        []int64
	Failures       []domain.CampaignError
}

// Billing moves campaigns through the money-related part of their
// lifecycle: authorize, void, charge and post-run refund.
type Billing struct {
	store     port.CampaignStore
	gateway   port.PaymentGateway
	traffic   port.Traffic
	notifier  port.Notifier
	locker    port.LinkLocker
	scheduler *Scheduler
	cal       *calendar.Calendar
	logger    *slog.Logger
}

// NewBilling wires the billing reconciler.
func NewBilling(
	store port.CampaignStore,
	gateway port.PaymentGateway,
	traffic port.Traffic,
	notifier port.Notifier,
	locker port.LinkLocker,
	scheduler *Scheduler,
	cal *calendar.Calendar,
	logger *slog.Logger,
) *Billing {
	return &Billing{
		store:     store,
		gateway:   gateway,
		traffic:   traffic,
		notifier:  notifier,
		locker:    locker,
		scheduler: scheduler,
		cal:       cal,
		logger:    logger,
	}
}

// Authorize voids any prior transaction of the campaign and authorizes its
// bid. On success the transaction id is recorded and the link is raised to
// at least unseen; on decline the transaction id is reset and the link is
// held at unpaid or above. Gateway faults are returned after a best-effort
// audit entry. Callers hold the link lock.
func (b *Billing) Authorize(ctx context.Context, link *domain.Link, c *domain.Campaign, payer domain.Account, profileID int64) (domain.AuthResult, error) {
	if err := b.VoidPrior(ctx, link, c); err != nil {
		return domain.AuthResult{}, err
	}

	txID, reason, err := b.gateway.Authorize(ctx, port.AuthRequest{
		Amount:     c.Bid,
		Payer:      payer,
		ProfileID:  profileID,
		LinkID:     link.ID,
		CampaignID: c.ID,
	})
	if err != nil {
		metrics.BillingOpsTotal.WithLabelValues("authorize", metrics.ResultFailed).Inc()
		b.audit(ctx, link.ID, "updated payment and/or bid for campaign %d: FAILED (%v)", c.ID, err)
		return domain.AuthResult{}, err
	}

	ok := txID != domain.NoTransaction && reason == ""
	if ok {
		metrics.BillingOpsTotal.WithLabelValues("authorize", metrics.ResultOK).Inc()
		b.audit(ctx, link.ID, "updated payment and/or bid for campaign %d: SUCCESS (trans_id: %d, amt: %s)",
			c.ID, txID, c.Bid.StringFixed(2))
		if txID == domain.FreebieTransaction {
			b.audit(ctx, link.ID, "FREEBIE (campaign: %d)", c.ID)
		}
		if link.Raise(domain.StatusUnseen) {
			if err = b.store.UpdateLink(ctx, link); err != nil {
				return domain.AuthResult{}, fmt.Errorf("update link %d: %w", link.ID, err)
			}
		}
		if payer.ID == link.AuthorID && txID > 0 {
			b.notify("bid queued", link.ID, b.notifier.BidQueued(ctx, link, c))
		}
	} else {
		metrics.BillingOpsTotal.WithLabelValues("authorize", metrics.ResultDeclined).Inc()
		b.audit(ctx, link.ID, "updated payment and/or bid for campaign %d: FAILED ('%s')", c.ID, reason)
		txID = domain.NoTransaction
		if link.Raise(domain.StatusUnpaid) {
			if err = b.store.UpdateLink(ctx, link); err != nil {
				return domain.AuthResult{}, fmt.Errorf("update link %d: %w", link.ID, err)
			}
		}
	}

	c.TransactionID = txID
	if err = b.store.UpdateCampaign(ctx, c); err != nil {
		return domain.AuthResult{}, fmt.Errorf("update campaign %d: %w", c.ID, err)
	}
	return domain.AuthResult{OK: ok, TransactionID: txID, Reason: reason}, nil
}

// VoidPrior voids the campaign's current transaction when the gateway still
// holds one for it. Nothing to void is not an error.
func (b *Billing) VoidPrior(ctx context.Context, link *domain.Link, c *domain.Campaign) error {
	if c.TransactionID == domain.NoTransaction || c.LinkID != link.ID {
		return nil
	}
	tx, err := b.store.Transaction(ctx, link.ID, c.ID, c.TransactionID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load transaction %d: %w", c.TransactionID, err)
	}
	if tx.IsVoid() {
		return nil
	}

	payer, err := b.store.Account(ctx, link.AuthorID)
	if err != nil {
		return fmt.Errorf("load account %d: %w", link.AuthorID, err)
	}
	if err = b.gateway.Void(ctx, *payer, tx.ID, c.ID); err != nil {
		metrics.BillingOpsTotal.WithLabelValues("void", metrics.ResultFailed).Inc()
		return err
	}
	metrics.BillingOpsTotal.WithLabelValues("void", metrics.ResultOK).Inc()
	return nil
}

// ChargePending charges every accepted campaign scheduled on day that is not
// charged yet. Each campaign is handled under its link lock; failures are
// reported and never stop the loop. Running it twice charges nothing twice.
func (b *Billing) ChargePending(ctx context.Context, day time.Time) (ChargeReport, error) {
	report := ChargeReport{Day: day}
	candidates, errs, err := b.scheduler.AcceptedCampaigns(ctx, day)
	if err != nil {
		return report, err
	}
	report.Failures = append(report.Failures, errs...)

	for _, cand := range candidates {
		c := cand.Campaign
		err = withLinkLock(ctx, b.locker, cand.Link.ID, func() error {
			return b.chargeOne(ctx, cand.Link.ID, c.ID, &report)
		})
		if err != nil {
			b.logger.Error("charge campaign",
				slog.Int64("campaign_id", c.ID),
				slog.Int64("link_id", cand.Link.ID),
				slog.Any("error", err))
			report.Failures = append(report.Failures, domain.CampaignError{CampaignID: c.ID, Err: err})
		}
	}
	return report, nil
}

func (b *Billing) chargeOne(ctx context.Context, linkID, campaignID int64, report *ChargeReport) error {
	// Re-read both under the lock so a concurrent edit is never charged stale.
	link, err := b.store.Link(ctx, linkID)
	if err != nil {
		return err
	}
	c, err := b.store.Campaign(ctx, campaignID)
	if errors.Is(err, domain.ErrNotFound) {
		report.Skipped = append(report.Skipped, campaignID)
		return nil
	}
	if err != nil {
		return err
	}

	done, err := b.scheduler.chargedOrNotNeeded(ctx, c)
	if err != nil {
		return err
	}
	if done || c.TransactionID == domain.NoTransaction {
		report.Skipped = append(report.Skipped, c.ID)
		return nil
	}

	payer, err := b.store.Account(ctx, link.AuthorID)
	if err != nil {
		return fmt.Errorf("load account %d: %w", link.AuthorID, err)
	}
	charged, err := b.gateway.Charge(ctx, *payer, c.TransactionID, c.ID)
	if err != nil {
		metrics.BillingOpsTotal.WithLabelValues("charge", metrics.ResultFailed).Inc()
		return err
	}
	if !charged {
		metrics.BillingOpsTotal.WithLabelValues("charge", metrics.ResultDeclined).Inc()
		b.logger.Warn("charge declined", slog.Int64("campaign_id", c.ID), slog.Int64("trans_id", c.TransactionID))
		report.Declined = append(report.Declined, c.ID)
		return nil
	}
	metrics.BillingOpsTotal.WithLabelValues("charge", metrics.ResultOK).Inc()
	report.Charged = append(report.Charged, c.ID)

	if !link.IsPromoted() && link.Status != domain.StatusPending {
		link.Status = domain.StatusPending
		if err = b.store.UpdateLink(ctx, link); err != nil {
			return fmt.Errorf("update link %d: %w", link.ID, err)
		}
	}
	b.notify("bid queued", link.ID, b.notifier.BidQueued(ctx, link, c))
	b.audit(ctx, link.ID, "auth charge for campaign %d, trans_id: %d", c.ID, c.TransactionID)
	return nil
}

// Finalize settles every paid campaign whose last day is day. The whole
// batch is refused with a *domain.CoverageError while traffic data for the
// run is incomplete. Finalized campaigns are skipped, so repeating the call
// is a no-op.
func (b *Billing) Finalize(ctx context.Context, day time.Time) (FinalizeReport, error) {
	report := FinalizeReport{Day: day}
	ended, err := b.store.CampaignsEndingOn(ctx, day)
	if err != nil {
		return report, fmt.Errorf("load campaigns ending %s: %w", day.Format(domain.DateLayout), err)
	}

	var pending []domain.Campaign
	for _, c := range ended {
		if c.IsFinalized() || !c.HasRealTransaction() {
			report.Skipped = append(report.Skipped, c.ID)
			continue
		}
		pending = append(pending, c)
	}
	if len(pending) == 0 {
		return report, nil
	}

	earliest := slices.MinFunc(pending, func(x, y domain.Campaign) int {
		return x.StartDate.Compare(y.StartDate)
	})
	start, end := b.cal.RunWindow(earliest.StartDate, day)
	gaps, err := b.traffic.MissingCoverage(ctx, start, end)
	if err != nil {
		return report, fmt.Errorf("check traffic coverage: %w", err)
	}
	if len(gaps) > 0 {
		return report, &domain.CoverageError{Day: day, Gaps: gaps}
	}

	var underdelivered []int64
	for _, c := range pending {
		err = withLinkLock(ctx, b.locker, c.LinkID, func() error {
			return b.finalizeOne(ctx, c.ID, &report, &underdelivered)
		})
		if err != nil {
			b.logger.Error("finalize campaign", slog.Int64("campaign_id", c.ID), slog.Any("error", err))
			report.Failures = append(report.Failures, domain.CampaignError{CampaignID: c.ID, Err: err})
		}
	}

	if len(underdelivered) > 0 {
		if err = b.store.MarkUnderdelivered(ctx, underdelivered); err != nil {
			return report, fmt.Errorf("mark underdelivered: %w", err)
		}
	}
	return report, nil
}

func (b *Billing) finalizeOne(ctx context.Context, campaignID int64, report *FinalizeReport, underdelivered *[]int64) error {
	c, err := b.store.Campaign(ctx, campaignID)
	if errors.Is(err, domain.ErrNotFound) {
		report.Skipped = append(report.Skipped, campaignID)
		return nil
	}
	if err != nil {
		return err
	}
	if c.IsFinalized() {
		report.Skipped = append(report.Skipped, c.ID)
		return nil
	}
	link, err := b.store.Link(ctx, c.LinkID)
	if err != nil {
		return fmt.Errorf("load link %d: %w", c.LinkID, err)
	}

	impressions, err := b.BillableImpressions(ctx, c)
	if err != nil {
		return err
	}
	billable := domain.BillableAmount(c, impressions)

	if billable.GreaterThanOrEqual(c.Bid) {
		if c.Pricing == domain.PricingCPM {
			b.audit(ctx, link.ID, "campaign %d completed with $%s billable (%d impressions @ $%s).",
				c.ID, billable.StringFixed(2), impressions, cpmDollars(c))
		} else {
			b.audit(ctx, link.ID, "campaign %d completed with $%s billable (flat).", c.ID, billable.StringFixed(2))
		}
		zero := decimal.Zero
		c.RefundAmount = &zero
		if err = b.store.UpdateCampaign(ctx, c); err != nil {
			return fmt.Errorf("update campaign %d: %w", c.ID, err)
		}
		report.Completed = append(report.Completed, c.ID)
		return nil
	}

	refunded, err := b.refund(ctx, link, c, billable, impressions)
	if !refunded {
		*underdelivered = append(*underdelivered, c.ID)
		report.Underdelivered = append(report.Underdelivered, c.ID)
	} else {
		report.Refunded = append(report.Refunded, c.ID)
	}
	return err
}

// RefundCampaign refunds the unearned part of a campaign's charge and marks
// it finalized. It is the refund step of Finalize and serves manual
// follow-up of underdelivered campaigns.
func (b *Billing) RefundCampaign(ctx context.Context, campaignID int64) (bool, error) {
	c, err := b.store.Campaign(ctx, campaignID)
	if err != nil {
		return false, err
	}
	var refunded bool
	err = withLinkLock(ctx, b.locker, c.LinkID, func() error {
		if c, err = b.store.Campaign(ctx, campaignID); err != nil {
			return err
		}
		if c.IsFinalized() {
			return domain.ErrAlreadyFinalized
		}
		if !c.HasRealTransaction() {
			return fmt.Errorf("%w: campaign %d has no transaction to refund", domain.ErrInvalidData, c.ID)
		}
		link, err := b.store.Link(ctx, c.LinkID)
		if err != nil {
			return err
		}
		impressions, err := b.BillableImpressions(ctx, c)
		if err != nil {
			return err
		}
		refunded, err = b.refund(ctx, link, c, domain.BillableAmount(c, impressions), impressions)
		return err
	})
	return refunded, err
}

// refund requests the refund and records the outcome. It reports whether the
// campaign ended up finalized. Callers hold the link lock.
func (b *Billing) refund(ctx context.Context, link *domain.Link, c *domain.Campaign, billable decimal.Decimal, impressions int64) (bool, error) {
	amount := domain.RefundAmount(c, billable)
	if !amount.IsPositive() {
		c.RefundAmount = &amount
		if err := b.store.UpdateCampaign(ctx, c); err != nil {
			return false, fmt.Errorf("update campaign %d: %w", c.ID, err)
		}
		return true, nil
	}

	owner, err := b.store.Account(ctx, c.OwnerID)
	if err != nil {
		return false, fmt.Errorf("load account %d: %w", c.OwnerID, err)
	}
	ok, err := b.gateway.Refund(ctx, *owner, c.TransactionID, c.ID, amount)
	if err != nil || !ok {
		result := metrics.ResultDeclined
		if err != nil {
			result = metrics.ResultFailed
		}
		metrics.BillingOpsTotal.WithLabelValues("refund", result).Inc()
		b.audit(ctx, link.ID, "campaign %d $%s refund failed", c.ID, amount.StringFixed(2))
		b.logger.Warn("refund failed",
			slog.Int64("campaign_id", c.ID),
			slog.String("amount", amount.StringFixed(2)),
			slog.Any("error", err))
		return false, err
	}
	metrics.BillingOpsTotal.WithLabelValues("refund", metrics.ResultOK).Inc()

	b.audit(ctx, link.ID, "campaign %d completed with $%s billable (%d impressions @ $%s). $%s refunded.",
		c.ID, billable.StringFixed(2), impressions, cpmDollars(c), amount.StringFixed(2))
	c.RefundAmount = &amount
	if err = b.store.UpdateCampaign(ctx, c); err != nil {
		return false, fmt.Errorf("update campaign %d: %w", c.ID, err)
	}
	if err = b.store.UnmarkUnderdelivered(ctx, c.ID); err != nil {
		b.logger.Error("unmark underdelivered", slog.Int64("campaign_id", c.ID), slog.Any("error", err))
	}
	b.notify("refunded", link.ID, b.notifier.Refunded(ctx, link, c, amount))
	return true, nil
}

// BillableImpressions sums the impressions a campaign delivered from the
// start of its run until now or the end of the run, whichever is first.
func (b *Billing) BillableImpressions(ctx context.Context, c *domain.Campaign) (int64, error) {
	start, end := b.cal.RunWindow(c.StartDate, c.EndDate)
	now := b.cal.Now().Truncate(time.Hour)
	if start.After(now) {
		return 0, nil
	}
	if now.Before(end) {
		end = now
	}
	rows, err := b.traffic.DeliveredImpressions(ctx, c.ID, start, end)
	if err != nil {
		return 0, fmt.Errorf("load impressions for campaign %d: %w", c.ID, err)
	}
	var total int64
	for _, r := range rows {
		total += r.Count
	}
	return total, nil
}

// Report returns what the campaign has cost so far: the full bid for flat
// runs, bid minus refund once finalized, and the billable amount of the
// impressions delivered until now otherwise.
func (b *Billing) Report(ctx context.Context, campaignID int64) (domain.BillingReport, error) {
	c, err := b.store.Campaign(ctx, campaignID)
	if err != nil {
		return domain.BillingReport{}, err
	}
	impressions, err := b.BillableImpressions(ctx, c)
	if err != nil {
		return domain.BillingReport{}, err
	}
	spent := domain.SpentAmount(c, domain.BillableAmount(c, impressions))
	return domain.BillingReport{
		CampaignID:   c.ID,
		Bid:          c.Bid,
		Spent:        spent,
		Impressions:  domain.FuzzImpressions(impressions, domain.ImpressionFuzz),
		CPM:          domain.CostPerMille(spent, impressions).RoundBank(2),
		RefundAmount: c.RefundAmount,
	}, nil
}

// audit appends to the link's promotion log. A failure to log never masks
// the operation's own outcome.
func (b *Billing) audit(ctx context.Context, linkID int64, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	if err := b.store.AddLog(ctx, linkID, text); err != nil {
		b.logger.Error("promotion log", slog.Int64("link_id", linkID), slog.String("text", text), slog.Any("error", err))
	}
}

func (b *Billing) notify(kind string, linkID int64, err error) {
	if err != nil {
		b.logger.Warn("notification failed", slog.String("kind", kind), slog.Int64("link_id", linkID), slog.Any("error", err))
	}
}

func cpmDollars(c *domain.Campaign) string {
	return decimal.New(c.CPMRate, -2).StringFixed(2)
}
