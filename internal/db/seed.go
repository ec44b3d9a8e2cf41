package db

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts a small demo data set: advertisers, audiences, accepted links
// with flat campaigns running around today, and processed traffic hours for
// the last few days. It is meant for dev databases and is safe to rerun.
func Seed(ctx context.Context, pool *pgxpool.Pool, today time.Time) error {
	audiences := []struct {
		name  string
		adult bool
	}{{"pics", false}, {"gaming", false}, {"nsfw", true}}
	for _, a := range audiences {
		if _, err := pool.Exec(ctx, `INSERT INTO audiences (name, adult) VALUES ($1,$2) ON CONFLICT DO NOTHING`,
			a.name, a.adult); err != nil {
			return fmt.Errorf("seed audience %s: %w", a.name, err)
		}
	}

	for i := int64(1); i <= 3; i++ {
		if _, err := pool.Exec(ctx, `INSERT INTO accounts (id, name, complimentary) VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`,
			i, fmt.Sprintf("advertiser-%d", i), i == 3); err != nil {
			return fmt.Errorf("seed account %d: %w", i, err)
		}
	}

	for i := int64(1); i <= 6; i++ {
		author := (i-1)%3 + 1
		if _, err := pool.Exec(ctx, `INSERT INTO links (id, author_id, title, status) VALUES ($1,$2,$3,'accepted')
ON CONFLICT DO NOTHING`, i, author, fmt.Sprintf("Promoted link %d", i)); err != nil {
			return fmt.Errorf("seed link %d: %w", i, err)
		}

		audience := ""
		if i%2 == 0 {
			audience = audiences[rand.IntN(len(audiences))].name
		}
		start := today.AddDate(0, 0, -int(i%3))
		end := today.AddDate(0, 0, int(i%2))
		bid := 10 + rand.IntN(90)
		if _, err := pool.Exec(ctx, `INSERT INTO campaigns
    (id, link_id, owner_id, audience, start_date, end_date, bid, pricing, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,'flat',now(),now()) ON CONFLICT DO NOTHING`,
			i, i, author, audience, start, end, bid); err != nil {
			return fmt.Errorf("seed campaign %d: %w", i, err)
		}
		if _, err := pool.Exec(ctx, `INSERT INTO promotion_weights (campaign_id, link_id, audience, start_date, end_date, weight)
SELECT $1,$2,$3,$4,$5,$6 WHERE NOT EXISTS (SELECT 1 FROM promotion_weights WHERE campaign_id = $1)`,
			i, i, audience, start, end, float64(bid)); err != nil {
			return fmt.Errorf("seed weight %d: %w", i, err)
		}
	}

	for _, table := range []string{"accounts", "links", "campaigns"} {
		if _, err := pool.Exec(ctx, fmt.Sprintf(
			`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), (SELECT max(id) FROM %[1]s))`, table)); err != nil {
			return fmt.Errorf("advance %s ids: %w", table, err)
		}
	}

	_, err := pool.Exec(ctx, `INSERT INTO traffic_processed (hour)
SELECT generate_series($1::timestamptz, $2::timestamptz, interval '1 hour') ON CONFLICT DO NOTHING`,
		today.AddDate(0, 0, -7), time.Now().UTC().Truncate(time.Hour).Add(-time.Hour))
	if err != nil {
		return fmt.Errorf("seed traffic coverage: %w", err)
	}
	return nil
}
