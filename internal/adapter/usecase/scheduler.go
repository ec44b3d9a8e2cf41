package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mesa-promote/internal/core/domain"
	"mesa-promote/internal/core/port"
)

// Candidate is a campaign whose weight record covers a day and whose link
// passed review. It may still be waiting for its charge.
type Candidate struct {
	Link     *domain.Link
	Campaign domain.Campaign
	Weight   float64
}

// Schedule is the outcome of one scheduling pass.
type Schedule struct {
	Day time.Time
	// ByAudience groups the live entries by audience name; "" is global.
	ByAudience map[string][]domain.AdWeight
	// Links holds every link referenced by ByAudience.
	Links map[int64]*domain.Link
	// Campaigns holds every campaign referenced by ByAudience.
	Campaigns map[int64]domain.Campaign
	// Errors lists records that could not be resolved. They never abort the
	// pass and must be reported once it completes.
	Errors []domain.CampaignError
}

// Len returns the number of live entries.
func (s *Schedule) Len() int {
	n := 0
	for _, ws := range s.ByAudience {
		n += len(ws)
	}
	return n
}

// Scheduler decides which campaigns compete on which audiences on a
// promotion day.
type Scheduler struct {
	store   port.CampaignStore
	gateway port.PaymentGateway
	logger  *slog.Logger
}

// NewScheduler creates a scheduler over the campaign store and gateway.
func NewScheduler(store port.CampaignStore, gateway port.PaymentGateway, logger *slog.Logger) *Scheduler {
	return &Scheduler{store: store, gateway: gateway, logger: logger}
}

// AcceptedCampaigns returns the campaigns scheduled on day that belong to
// accepted links and are authorized when they need to be. Missing campaigns
// and links are skipped; records that break an invariant are returned as
// errors next to the candidates.
func (s *Scheduler) AcceptedCampaigns(ctx context.Context, day time.Time) ([]Candidate, []domain.CampaignError, error) {
	weights, err := s.store.WeightsOverlapping(ctx, day, day)
	if err != nil {
		return nil, nil, fmt.Errorf("load weights for %s: %w", day.Format(domain.DateLayout), err)
	}
	if len(weights) == 0 {
		return nil, nil, nil
	}

	linkIDs := make([]int64, 0, len(weights))
	for _, w := range weights {
		linkIDs = append(linkIDs, w.LinkID)
	}
	links, err := s.store.Links(ctx, linkIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("load links: %w", err)
	}

	var (
		out  []Candidate
		errs []domain.CampaignError
	)
	for _, w := range weights {
		campaign, err := s.store.Campaign(ctx, w.CampaignID)
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Debug("scheduled campaign not found", slog.Int64("campaign_id", w.CampaignID))
			continue
		}
		if err != nil {
			errs = append(errs, domain.CampaignError{CampaignID: w.CampaignID, Err: err})
			continue
		}
		if campaign.NeedsCharge() && campaign.TransactionID == domain.NoTransaction {
			continue
		}

		link, ok := links[campaign.LinkID]
		if !ok {
			s.logger.Debug("scheduled link not found",
				slog.Int64("campaign_id", campaign.ID),
				slog.Int64("link_id", campaign.LinkID))
			continue
		}
		if !link.IsAccepted() {
			continue
		}
		if err = campaign.Validate(); err != nil {
			errs = append(errs, domain.CampaignError{CampaignID: campaign.ID, Err: err})
			continue
		}
		out = append(out, Candidate{Link: link, Campaign: *campaign, Weight: w.Weight})
	}
	return out, errs, nil
}

// ComputeSchedule builds the live entries for day, grouped by audience. When
// audiences is not nil only those audiences are returned.
func (s *Scheduler) ComputeSchedule(ctx context.Context, day time.Time, audiences []string) (*Schedule, error) {
	candidates, errs, err := s.AcceptedCampaigns(ctx, day)
	if err != nil {
		return nil, err
	}

	var only map[string]bool
	if audiences != nil {
		only = make(map[string]bool, len(audiences))
		for _, a := range audiences {
			only[a] = true
		}
	}

	sched := &Schedule{
		Day:        day,
		ByAudience: make(map[string][]domain.AdWeight),
		Links:      make(map[int64]*domain.Link),
		Campaigns:  make(map[int64]domain.Campaign),
		Errors:     errs,
	}
	for _, cand := range candidates {
		c := cand.Campaign
		if only != nil && !only[c.Audience] {
			continue
		}
		ok, err := s.chargedOrNotNeeded(ctx, &c)
		if err != nil {
			sched.Errors = append(sched.Errors, domain.CampaignError{CampaignID: c.ID, Err: err})
			continue
		}
		if !ok {
			continue
		}
		sched.ByAudience[c.Audience] = append(sched.ByAudience[c.Audience], domain.AdWeight{
			LinkID:     cand.Link.ID,
			CampaignID: c.ID,
			Audience:   c.Audience,
			Weight:     cand.Weight,
		})
		sched.Links[cand.Link.ID] = cand.Link
		sched.Campaigns[c.ID] = c
	}
	return sched, nil
}

// LiveCampaignIDs returns the campaigns of link that are scheduled and
// charged (or need no charge) on day.
func (s *Scheduler) LiveCampaignIDs(ctx context.Context, link *domain.Link, day time.Time) ([]int64, error) {
	if !link.IsAccepted() {
		return nil, nil
	}
	weights, err := s.store.WeightsOverlapping(ctx, day, day)
	if err != nil {
		return nil, fmt.Errorf("load weights for %s: %w", day.Format(domain.DateLayout), err)
	}

	var live []int64
	for _, w := range weights {
		if w.LinkID != link.ID {
			continue
		}
		campaign, err := s.store.Campaign(ctx, w.CampaignID)
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("scheduled campaign not found",
				slog.Int64("campaign_id", w.CampaignID),
				slog.String("day", day.Format(domain.DateLayout)))
			continue
		}
		if err != nil {
			return nil, err
		}
		ok, err := s.chargedOrNotNeeded(ctx, campaign)
		if err != nil {
			return nil, err
		}
		if ok {
			live = append(live, campaign.ID)
		}
	}
	return live, nil
}

// chargedOrNotNeeded reports whether a campaign may go live as far as
// payment is concerned. Flat campaigns and complimentary runs never need a
// charge; cpm campaigns need the gateway to confirm theirs.
func (s *Scheduler) chargedOrNotNeeded(ctx context.Context, c *domain.Campaign) (bool, error) {
	if !c.NeedsCharge() || c.IsFreebie() {
		return true, nil
	}
	if c.TransactionID == domain.NoTransaction {
		return false, nil
	}
	return s.gateway.IsCharged(ctx, c.TransactionID, c.ID)
}
