package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"mesa-promote/internal/core/calendar"
	"mesa-promote/internal/core/domain"
	"mesa-promote/internal/core/port"
	"mesa-promote/internal/metrics"
)

// RunOptions controls one daily pass.
type RunOptions struct {
	// Offset is the number of days after today to schedule.
	Offset int
	// DryRun computes and logs the plan without charging, publishing or
	// finalizing anything.
	DryRun bool
}

// RunReport describes a completed daily pass.
type RunReport struct {
	Day       time.Time
	DryRun    bool
	Charges   []ChargeReport
	Scheduled int
	Finished  []int64
	Promoted  []int64
	Adult     []int64
	Published map[string][]domain.AdWeight
	Finalize  FinalizeReport
	Errors    []domain.CampaignError
}

// Orchestrator runs the daily promotion pass: charge, schedule, move link
// statuses, publish and finalize.
type Orchestrator struct {
	store     port.CampaignStore
	live      port.LiveSetStore
	health    port.HealthSignal
	notifier  port.Notifier
	locker    port.LinkLocker
	scheduler *Scheduler
	billing   *Billing
	publisher *Publisher
	cal       *calendar.Calendar
	logger    *slog.Logger

	group singleflight.Group
}

// NewOrchestrator wires the daily pass.
func NewOrchestrator(
	store port.CampaignStore,
	live port.LiveSetStore,
	health port.HealthSignal,
	notifier port.Notifier,
	locker port.LinkLocker,
	scheduler *Scheduler,
	billing *Billing,
	publisher *Publisher,
	cal *calendar.Calendar,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		store:     store,
		live:      live,
		health:    health,
		notifier:  notifier,
		locker:    locker,
		scheduler: scheduler,
		billing:   billing,
		publisher: publisher,
		cal:       cal,
		logger:    logger,
	}
}

// Run executes one pass for today plus opts.Offset days. Concurrent calls
// with the same options share a single pass. Every valid campaign is
// processed even when some records fail; those failures are then returned as
// a *domain.BatchError together with any finalize error. The health signal
// is only updated by a pass without errors.
func (o *Orchestrator) Run(ctx context.Context, opts RunOptions) (*RunReport, error) {
	key := fmt.Sprintf("%d:%t", opts.Offset, opts.DryRun)
	v, err, shared := o.group.Do(key, func() (any, error) {
		return o.run(ctx, opts)
	})
	if shared {
		o.logger.Debug("daily pass shared with a concurrent trigger", slog.String("key", key))
	}
	report, _ := v.(*RunReport)
	return report, err
}

func (o *Orchestrator) run(ctx context.Context, opts RunOptions) (report *RunReport, err error) {
	start := time.Now()
	defer func() {
		result := metrics.ResultOK
		if err != nil {
			result = metrics.ResultFailed
		}
		metrics.RunsTotal.WithLabelValues(result).Inc()
		metrics.RunDuration.Observe(time.Since(start).Seconds())
	}()

	day := o.cal.Day(opts.Offset)
	report = &RunReport{Day: day, DryRun: opts.DryRun}
	logger := o.logger.With(slog.String("day", day.Format(domain.DateLayout)), slog.Bool("dry_run", opts.DryRun))

	if !opts.DryRun {
		for _, d := range []time.Time{day.AddDate(0, 0, 1), day} {
			charge, err := o.billing.ChargePending(ctx, d)
			if err != nil {
				return report, fmt.Errorf("charge pending %s: %w", d.Format(domain.DateLayout), err)
			}
			if len(charge.Failures) > 0 {
				logger.Warn("some campaigns could not be charged", slog.Any("failures", charge.Failures))
			}
			report.Charges = append(report.Charges, charge)
		}
	}

	sched, err := o.scheduler.ComputeSchedule(ctx, day, nil)
	if err != nil {
		return report, fmt.Errorf("compute schedule: %w", err)
	}
	report.Scheduled = sched.Len()
	report.Errors = sched.Errors

	current, err := o.live.Get(ctx, []string{domain.AllAdsKey})
	if err != nil {
		return report, fmt.Errorf("load live set: %w", err)
	}

	if err = o.finishExpired(ctx, logger, current[domain.AllAdsKey], sched, report, opts.DryRun); err != nil {
		return report, err
	}
	if err = o.launchScheduled(ctx, logger, sched, report, opts.DryRun); err != nil {
		return report, err
	}

	if opts.DryRun {
		logger.Info("dry run schedule", slog.Any("by_audience", sched.ByAudience))
		return report, batchError(report.Errors, nil)
	}

	if report.Published, err = o.publisher.Publish(ctx, day, sched.ByAudience); err != nil {
		return report, err
	}

	report.Finalize, err = o.billing.Finalize(ctx, day.AddDate(0, 0, -1))
	var coverage *domain.CoverageError
	if errors.As(err, &coverage) {
		logger.Warn("finalize postponed", slog.Any("error", err))
	} else if err != nil {
		logger.Error("finalize", slog.Any("error", err))
	}

	if len(report.Errors) == 0 && err == nil {
		if herr := o.health.MarkUpdated(ctx, o.cal.Now()); herr != nil {
			logger.Error("mark promotions updated", slog.Any("error", herr))
		}
	}
	logger.Info("daily promotions done",
		slog.Int("scheduled", report.Scheduled),
		slog.Int("finished", len(report.Finished)),
		slog.Int("promoted", len(report.Promoted)),
		slog.Int("errors", len(report.Errors)))
	return report, batchError(report.Errors, err)
}

// finishExpired marks links that are live now but absent from the new
// schedule as finished.
func (o *Orchestrator) finishExpired(ctx context.Context, logger *slog.Logger, current []domain.AdWeight,
	sched *Schedule, report *RunReport, dryRun bool) error {
	seen := make(map[int64]bool)
	for _, aw := range current {
		if _, ok := sched.Links[aw.LinkID]; ok || seen[aw.LinkID] {
			continue
		}
		seen[aw.LinkID] = true

		if dryRun {
			link, err := o.store.Link(ctx, aw.LinkID)
			if err == nil && link.IsPromoted() {
				logger.Info("would finish", slog.Int64("link_id", aw.LinkID))
				report.Finished = append(report.Finished, aw.LinkID)
			}
			continue
		}

		link, changed, err := mutateLink(ctx, o.store, o.locker, aw.LinkID, func(l *domain.Link) bool {
			if !l.IsPromoted() {
				return false
			}
			l.Status = domain.StatusFinished
			return true
		})
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("finish link %d: %w", aw.LinkID, err)
		}
		if changed {
			report.Finished = append(report.Finished, link.ID)
			o.notify(logger, "finished", link.ID, o.notifier.Finished(ctx, link))
		}
	}
	return nil
}

// launchScheduled flags links running on adult audiences and promotes
// accepted links whose campaigns just went live.
func (o *Orchestrator) launchScheduled(ctx context.Context, logger *slog.Logger, sched *Schedule,
	report *RunReport, dryRun bool) error {
	names := make([]string, 0, len(sched.ByAudience))
	seen := make(map[string]bool, len(sched.ByAudience))
	for audience := range sched.ByAudience {
		name := domain.NormalizeAudience(audience)
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	audiences, err := o.store.Audiences(ctx, names)
	if err != nil {
		return fmt.Errorf("load audiences: %w", err)
	}

	adult := make(map[int64]bool)
	for audience, ws := range sched.ByAudience {
		if !audiences[domain.NormalizeAudience(audience)].Adult {
			continue
		}
		for _, aw := range ws {
			adult[aw.LinkID] = true
		}
	}

	for id, link := range sched.Links {
		needsAdult := adult[id] && !link.Adult
		needsPromote := link.IsAccepted() && !link.IsPromoted()
		if !needsAdult && !needsPromote {
			continue
		}
		if dryRun {
			logger.Info("would launch", slog.Int64("link_id", id), slog.Bool("adult", needsAdult), slog.Bool("promote", needsPromote))
			continue
		}

		var flagged, promoted bool
		updated, _, err := mutateLink(ctx, o.store, o.locker, id, func(l *domain.Link) bool {
			if adult[id] && !l.Adult {
				l.Adult, flagged = true, true
			}
			if l.IsAccepted() && !l.IsPromoted() {
				l.Status, promoted = domain.StatusPromoted, true
			}
			return flagged || promoted
		})
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("launch link %d: %w", id, err)
		}
		if flagged {
			report.Adult = append(report.Adult, id)
		}
		if promoted {
			report.Promoted = append(report.Promoted, id)
			o.notify(logger, "live", id, o.notifier.Live(ctx, updated))
		}
	}
	return nil
}

func (o *Orchestrator) notify(logger *slog.Logger, kind string, linkID int64, err error) {
	if err != nil {
		logger.Warn("notification failed", slog.String("kind", kind), slog.Int64("link_id", linkID), slog.Any("error", err))
	}
}

// LastUpdated returns when the live sets were last published by a clean
// pass.
func (o *Orchestrator) LastUpdated(ctx context.Context) (time.Time, error) {
	return o.health.LastUpdated(ctx)
}

func batchError(errs []domain.CampaignError, cause error) error {
	if len(errs) == 0 && cause == nil {
		return nil
	}
	return &domain.BatchError{Campaigns: errs, Cause: cause}
}
