package dbx

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
)

// ConnectOptions controls how Open waits for the database to come up.
type ConnectOptions struct {
	Attempts uint64
	Delay    time.Duration
}

// DefaultConnectOptions retries for roughly half a minute with exponential
// backoff capped at 5s between attempts.
var DefaultConnectOptions = ConnectOptions{Attempts: 8, Delay: 200 * time.Millisecond}

// Open opens a *sql.DB for the given driver and pings it until it answers or
// the attempts run out.
func Open(ctx context.Context, driver, dsn string, opts ConnectOptions) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if opts.Attempts == 0 {
		opts.Attempts = 1
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultConnectOptions.Delay
	}

	b := retry.NewExponential(opts.Delay)
	b = retry.WithCappedDuration(5*time.Second, b)
	b = retry.WithMaxRetries(opts.Attempts-1, b)

	err = retry.Do(ctx, b, func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	return db, nil
}
