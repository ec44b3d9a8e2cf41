package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"mesa-promote/internal/core/domain"
)

// CampaignStore implements port.CampaignStore on PostgreSQL using pgxpool.
// Money columns are numeric and travel as text so no precision is lost.
type CampaignStore struct {
	pool *pgxpool.Pool
}

// NewCampaignStore returns a new store instance.
func NewCampaignStore(pool *pgxpool.Pool) *CampaignStore {
	return &CampaignStore{pool: pool}
}

const campaignColumns = `id, link_id, owner_id, audience, start_date, end_date, bid::text,
	pricing, cpm_rate, priority, transaction_id, refund_amount::text`

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c       domain.Campaign
		bid     string
		pricing string
		refund  *string
	)
	err := row.Scan(&c.ID, &c.LinkID, &c.OwnerID, &c.Audience, &c.StartDate, &c.EndDate, &bid,
		&pricing, &c.CPMRate, &c.Priority, &c.TransactionID, &refund)
	if err != nil {
		return c, err
	}
	c.Pricing = domain.PricingMode(pricing)
	if c.Bid, err = decimal.NewFromString(bid); err != nil {
		return c, fmt.Errorf("%w: campaign %d bid %q", domain.ErrInvalidData, c.ID, bid)
	}
	if refund != nil {
		amount, err := decimal.NewFromString(*refund)
		if err != nil {
			return c, fmt.Errorf("%w: campaign %d refund %q", domain.ErrInvalidData, c.ID, *refund)
		}
		c.RefundAmount = &amount
	}
	return c, nil
}

func collectCampaigns(rows pgx.Rows) ([]domain.Campaign, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

func refundParam(c *domain.Campaign) *string {
	if c.RefundAmount == nil {
		return nil
	}
	s := c.RefundAmount.String()
	return &s
}

func notFound(err error, what string, id any) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", what, id, domain.ErrNotFound)
	}
	return err
}

func (r *CampaignStore) Campaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "campaign", id)
	}
	return &c, nil
}

func (r *CampaignStore) CampaignsByLink(ctx context.Context, linkID int64) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE link_id = $1 ORDER BY id`, linkID)
	if err != nil {
		return nil, err
	}
	return collectCampaigns(rows)
}

func (r *CampaignStore) CampaignsEndingOn(ctx context.Context, day time.Time) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns
		WHERE end_date = $1 AND transaction_id > 0 ORDER BY id`, day)
	if err != nil {
		return nil, err
	}
	return collectCampaigns(rows)
}

func (r *CampaignStore) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	return r.pool.QueryRow(ctx, `INSERT INTO campaigns
    (link_id, owner_id, audience, start_date, end_date, bid, pricing, cpm_rate, priority, transaction_id, refund_amount, created_at)
VALUES ($1,$2,$3,$4,$5,$6::numeric,$7,$8,$9,$10,$11::numeric,now()) RETURNING id`,
		c.LinkID, c.OwnerID, c.Audience, c.StartDate, c.EndDate, c.Bid.String(), string(c.Pricing),
		c.CPMRate, c.Priority, c.TransactionID, refundParam(c)).Scan(&c.ID)
}

func (r *CampaignStore) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET
    audience = $2, start_date = $3, end_date = $4, bid = $5::numeric, pricing = $6, cpm_rate = $7,
    priority = $8, transaction_id = $9, refund_amount = $10::numeric, updated_at = now()
WHERE id = $1`,
		c.ID, c.Audience, c.StartDate, c.EndDate, c.Bid.String(), string(c.Pricing), c.CPMRate,
		c.Priority, c.TransactionID, refundParam(c))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("campaign %d: %w", c.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *CampaignStore) DeleteCampaign(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	return err
}

func (r *CampaignStore) WeightsOverlapping(ctx context.Context, from, to time.Time) ([]domain.ScheduledWeight, error) {
	rows, err := r.pool.Query(ctx, `SELECT campaign_id, link_id, audience, start_date, end_date, weight
FROM promotion_weights WHERE start_date <= $2 AND end_date >= $1 ORDER BY id`, from, to)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ScheduledWeight, error) {
		var w domain.ScheduledWeight
		err := row.Scan(&w.CampaignID, &w.LinkID, &w.Audience, &w.StartDate, &w.EndDate, &w.Weight)
		return w, err
	})
}

func (r *CampaignStore) AddWeight(ctx context.Context, w domain.ScheduledWeight) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO promotion_weights
    (campaign_id, link_id, audience, start_date, end_date, weight) VALUES ($1,$2,$3,$4,$5,$6)`,
		w.CampaignID, w.LinkID, w.Audience, w.StartDate, w.EndDate, w.Weight)
	return err
}

func (r *CampaignStore) Reschedule(ctx context.Context, w domain.ScheduledWeight) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	if _, err = tx.Exec(ctx, `DELETE FROM promotion_weights WHERE campaign_id = $1`, w.CampaignID); err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO promotion_weights
    (campaign_id, link_id, audience, start_date, end_date, weight) VALUES ($1,$2,$3,$4,$5,$6)`,
		w.CampaignID, w.LinkID, w.Audience, w.StartDate, w.EndDate, w.Weight)
	return err
}

func (r *CampaignStore) DeleteUnfinishedWeights(ctx context.Context, campaignID int64, today time.Time) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM promotion_weights WHERE campaign_id = $1 AND end_date >= $2`, campaignID, today)
	return err
}

const linkColumns = `id, author_id, title, status, rejected, adult, deleted`

func scanLink(row pgx.Row) (domain.Link, error) {
	var (
		l      domain.Link
		status string
	)
	if err := row.Scan(&l.ID, &l.AuthorID, &l.Title, &status, &l.Rejected, &l.Adult, &l.Deleted); err != nil {
		return l, err
	}
	s, err := domain.ParseStatus(status)
	if err != nil {
		return l, fmt.Errorf("link %d: %w", l.ID, err)
	}
	l.Status = s
	return l, nil
}

func (r *CampaignStore) Link(ctx context.Context, id int64) (*domain.Link, error) {
	l, err := scanLink(r.pool.QueryRow(ctx, `SELECT `+linkColumns+` FROM links WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "link", id)
	}
	return &l, nil
}

func (r *CampaignStore) Links(ctx context.Context, ids []int64) (map[int64]*domain.Link, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+linkColumns+` FROM links WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	links, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Link, error) {
		return scanLink(row)
	})
	if err != nil {
		return nil, err
	}
	out := make(map[int64]*domain.Link, len(links))
	for i := range links {
		out[links[i].ID] = &links[i]
	}
	return out, nil
}

func (r *CampaignStore) UpdateLink(ctx context.Context, l *domain.Link) error {
	tag, err := r.pool.Exec(ctx, `UPDATE links SET status = $2, rejected = $3, adult = $4 WHERE id = $1`,
		l.ID, l.Status.String(), l.Rejected, l.Adult)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("link %d: %w", l.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *CampaignStore) Audiences(ctx context.Context, names []string) (map[string]domain.Audience, error) {
	rows, err := r.pool.Query(ctx, `SELECT name, adult FROM audiences WHERE name = ANY($1)`, names)
	if err != nil {
		return nil, err
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Audience])
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.Audience, len(list))
	for _, a := range list {
		out[a.Name] = a
	}
	return out, nil
}

func (r *CampaignStore) Account(ctx context.Context, id int64) (*domain.Account, error) {
	var a domain.Account
	err := r.pool.QueryRow(ctx, `SELECT id, name, complimentary FROM accounts WHERE id = $1`, id).
		Scan(&a.ID, &a.Name, &a.Complimentary)
	if err != nil {
		return nil, notFound(err, "account", id)
	}
	return &a, nil
}

func (r *CampaignStore) Transaction(ctx context.Context, linkID, campaignID, transactionID int64) (*domain.Transaction, error) {
	var (
		t      domain.Transaction
		amount string
		state  string
	)
	err := r.pool.QueryRow(ctx, `SELECT id, link_id, campaign_id, amount::text, state FROM transactions
WHERE link_id = $1 AND campaign_id = $2 AND id = $3`, linkID, campaignID, transactionID).
		Scan(&t.ID, &t.LinkID, &t.CampaignID, &amount, &state)
	if err != nil {
		return nil, notFound(err, "transaction", transactionID)
	}
	t.State = domain.TransactionState(state)
	if t.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("%w: transaction %d amount %q", domain.ErrInvalidData, t.ID, amount)
	}
	return &t, nil
}

func (r *CampaignStore) MarkUnderdelivered(ctx context.Context, campaignIDs []int64) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO underdelivered (campaign_id, marked_at)
SELECT unnest($1::bigint[]), now() ON CONFLICT (campaign_id) DO NOTHING`, campaignIDs)
	return err
}

func (r *CampaignStore) UnmarkUnderdelivered(ctx context.Context, campaignID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM underdelivered WHERE campaign_id = $1`, campaignID)
	return err
}

func (r *CampaignStore) AddLog(ctx context.Context, linkID int64, text string) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO promotion_log (link_id, text, created_at) VALUES ($1,$2,now())`, linkID, text)
	return err
}
