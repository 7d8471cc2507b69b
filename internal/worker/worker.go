// Package worker runs background jobs on a river queue backed by the session database.
package worker

import (
	"context"
	"fmt"
	"newsroom/internal/session"
	"newsroom/pkg/logger"
	"newsroom/pkg/storage"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

type Options struct {
	// PurgeInterval is how often expired sessions are deleted.
	PurgeInterval time.Duration
	MaxWorkers    int
}

// NewClient builds the river client with every worker and periodic job registered.
func NewClient(ctx context.Context, dbPool *pgxpool.Pool, store storage.SessionStorage, opts Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewSessionPurgeWorker(store))

	if opts.MaxWorkers <= 0 {
		opts.MaxWorkers = 5
	}
	if opts.PurgeInterval <= 0 {
		opts.PurgeInterval = time.Hour
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: opts.MaxWorkers},
		},
		Workers: workers,
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(opts.PurgeInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return session.PurgeJobArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		},
		Logger: logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return riverClient, nil
}

// Start builds the river client and starts working jobs until ctx is done or
// the client is stopped.
func Start(ctx context.Context, dbPool *pgxpool.Pool, store storage.SessionStorage, opts Options) (*river.Client[pgx.Tx], error) {
	riverClient, err := NewClient(ctx, dbPool, store, opts)
	if err != nil {
		return nil, err
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
