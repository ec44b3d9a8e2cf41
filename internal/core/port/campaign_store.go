package port

import (
	"context"
	"time"

	"mesa-promote/internal/core/domain"
)

// CampaignStore is the persistence layer for links, campaigns, schedule
// weights and the per-link audit log. It is an outbound port in hexagonal
// architecture. Lookups of a missing entity return domain.ErrNotFound.
type CampaignStore interface {
	// Campaign returns a campaign by id.
	Campaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// CampaignsByLink returns every campaign of a link.
	CampaignsByLink(ctx context.Context, linkID int64) ([]domain.Campaign, error)
	// CampaignsEndingOn returns campaigns whose last day is day and that are
	// backed by a real (>0) transaction.
	CampaignsEndingOn(ctx context.Context, day time.Time) ([]domain.Campaign, error)
	// CreateCampaign inserts a campaign and assigns its id.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// UpdateCampaign stores every mutable field of c.
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	// DeleteCampaign removes a campaign.
	DeleteCampaign(ctx context.Context, id int64) error

	// WeightsOverlapping returns schedule weights whose date range overlaps
	// [from, to] (dates, inclusive).
	WeightsOverlapping(ctx context.Context, from, to time.Time) ([]domain.ScheduledWeight, error)
	// AddWeight inserts a schedule weight.
	AddWeight(ctx context.Context, w domain.ScheduledWeight) error
	// Reschedule replaces the schedule weight of a campaign.
	Reschedule(ctx context.Context, w domain.ScheduledWeight) error
	// DeleteUnfinishedWeights removes a campaign's weights that have not
	// ended before today.
	DeleteUnfinishedWeights(ctx context.Context, campaignID int64, today time.Time) error

	// Link returns a promoted link by id.
	Link(ctx context.Context, id int64) (*domain.Link, error)
	// Links returns the links that exist among ids, keyed by id.
	Links(ctx context.Context, ids []int64) (map[int64]*domain.Link, error)
	// UpdateLink stores status, rejection and adult flags of a link.
	UpdateLink(ctx context.Context, l *domain.Link) error

	// Audiences returns the audiences that exist among names, keyed by name.
	Audiences(ctx context.Context, names []string) (map[string]domain.Audience, error)
	// Account returns an advertiser account.
	Account(ctx context.Context, id int64) (*domain.Account, error)
	// Transaction returns the gateway record for a campaign and transaction
	// id on a link, or domain.ErrNotFound.
	Transaction(ctx context.Context, linkID, campaignID, transactionID int64) (*domain.Transaction, error)

	// MarkUnderdelivered flags campaigns for manual refund follow-up.
	MarkUnderdelivered(ctx context.Context, campaignIDs []int64) error
	// UnmarkUnderdelivered clears the follow-up flag of a campaign.
	UnmarkUnderdelivered(ctx context.Context, campaignID int64) error
	// AddLog appends an entry to a link's promotion log.
	AddLog(ctx context.Context, linkID int64, text string) error
}
