package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mesa-promote/internal/core/domain"
	"mesa-promote/internal/core/port"
)

// Traffic implements port.Traffic over the hourly impression rollups the
// tracking pipeline writes. An hour counts as covered once it appears in
// traffic_processed.
type Traffic struct {
	pool *pgxpool.Pool
}

// NewTraffic returns a traffic reader.
func NewTraffic(pool *pgxpool.Pool) *Traffic {
	return &Traffic{pool: pool}
}

// DeliveredImpressions sums impressions per UTC date between start and end.
func (t *Traffic) DeliveredImpressions(ctx context.Context, campaignID int64, start, end time.Time) ([]port.DailyImpressions, error) {
	rows, err := t.pool.Query(ctx, `SELECT (hour AT TIME ZONE 'UTC')::date AS day, sum(impressions)::bigint
FROM traffic_impressions
WHERE campaign_id = $1 AND hour >= $2 AND hour < $3
GROUP BY day ORDER BY day`, campaignID, start, end)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[port.DailyImpressions])
}

// MissingCoverage returns the runs of hours in [start, end) that the tracking
// pipeline has not processed, merged into contiguous gaps.
func (t *Traffic) MissingCoverage(ctx context.Context, start, end time.Time) ([]domain.Gap, error) {
	start = start.UTC().Truncate(time.Hour)
	rows, err := t.pool.Query(ctx, `SELECT hour FROM traffic_processed WHERE hour >= $1 AND hour < $2`, start, end)
	if err != nil {
		return nil, err
	}
	hours, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
	if err != nil {
		return nil, err
	}
	return coverageGaps(start, end, hours), nil
}

func coverageGaps(start, end time.Time, processed []time.Time) []domain.Gap {
	seen := make(map[int64]bool, len(processed))
	for _, h := range processed {
		seen[h.UTC().Truncate(time.Hour).Unix()] = true
	}

	var gaps []domain.Gap
	for h := start; h.Before(end); h = h.Add(time.Hour) {
		if seen[h.Unix()] {
			continue
		}
		if n := len(gaps); n > 0 && gaps[n-1].To.Equal(h) {
			gaps[n-1].To = h.Add(time.Hour)
			continue
		}
		gaps = append(gaps, domain.Gap{From: h, To: h.Add(time.Hour)})
	}
	return gaps
}
