// Package store persists completed analyses to Postgres. Entirely
// optional: with no DATABASE_URL configured the pipeline skips
// persistence and keeps working.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pool *pgxpool.Pool
	once sync.Once
)

// InitDB initializes the connection pool. The URL comes from resolved
// configuration rather than the environment so tests and the API
// server can inject their own.
func InitDB(ctx context.Context, dbURL string) error {
	var err error
	once.Do(func() {
		if dbURL == "" {
			err = fmt.Errorf("database URL not configured")
			return
		}
		cfg, parseErr := pgxpool.ParseConfig(dbURL)
		if parseErr != nil {
			err = fmt.Errorf("failed to parse database config: %w", parseErr)
			return
		}
		pool, err = pgxpool.NewWithConfig(ctx, cfg)
	})
	return err
}

// GetPool returns the pool, or nil when persistence is disabled.
func GetPool() *pgxpool.Pool {
	return pool
}

// Close shuts the pool down.
func Close() {
	if pool != nil {
		pool.Close()
	}
}
