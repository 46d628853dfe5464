package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Pinger opens a short-lived connection and runs a trivial statement against it
type Pinger func(ctx context.Context) error

// NewConnPinger returns a Pinger that connects with connString and runs SELECT 1
func NewConnPinger(connString string) Pinger {
	return func(ctx context.Context) error {
		conn, err := pgx.Connect(ctx, connString)
		if err != nil {
			return err
		}
		defer conn.Close(ctx)

		var one int
		return conn.QueryRow(ctx, "SELECT 1").Scan(&one)
	}
}

// WaitForDatabase calls ping up to attempts times, sleeping delay between failures.
// It returns nil on the first success and an error once the budget is spent.
func WaitForDatabase(ctx context.Context, ping Pinger, attempts int, delay time.Duration, lgr zerolog.Logger) error {
	var lastErr error
	for i := 1; i <= attempts; i++ {
		if lastErr = ping(ctx); lastErr == nil {
			lgr.Info().Int("attempt", i).Msg("Database connection established")
			return nil
		}

		lgr.Info().Err(lastErr).Int("attempt", i).Int("maxAttempts", attempts).Msg("Waiting for database...")
		if i == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("database not reachable after %d attempts: %w", attempts, lastErr)
}
