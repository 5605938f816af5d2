// Package worker runs scans in the background on a River job queue. Each
// accepted scan becomes one job; a periodic job fails scans whose run was lost.
package worker

import (
	"context"
	"exposure/internal/config"
	"exposure/internal/scanner"
	"exposure/pkg/logger"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

const defaultMaxWorkers = 50

// Options tune the job runtime.
type Options struct {
	// MaxWorkers is the number of jobs run concurrently by one process.
	MaxWorkers int
	// JobTimeout bounds a single scan run.
	JobTimeout time.Duration
	// ReapInterval is how often stale scans are looked for. Zero disables the reaper.
	ReapInterval time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers:   cfg.Worker.MaxWorkers,
		JobTimeout:   cfg.Worker.JobTimeout,
		ReapInterval: cfg.Scanner.ReapInterval,
	}
}

// Workers registers the scan and reaper workers.
func Workers(scanner scanner.Scanner, opts Options) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewScanWorker(scanner, opts.JobTimeout))
	river.AddWorker(workers, NewReaperWorker(scanner))

	return workers
}

// PeriodicJobs returns the jobs River schedules on its own.
func PeriodicJobs(opts Options) []*river.PeriodicJob {
	if opts.ReapInterval <= 0 {
		return nil
	}

	return []*river.PeriodicJob{
		river.NewPeriodicJob(
			river.PeriodicInterval(opts.ReapInterval),
			func() (river.JobArgs, *river.InsertOpts) {
				return scanner.ReapJobArgs{}, nil
			},
			&river.PeriodicJobOpts{RunOnStart: true},
		),
	}
}

// Start creates a River client processing scan jobs and starts it. The caller
// stops it on shutdown.
func Start(ctx context.Context, dbPool *pgxpool.Pool, scanner scanner.Scanner, opts Options) (*river.Client[pgx.Tx], error) {
	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = defaultMaxWorkers
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers:      Workers(scanner, opts),
		PeriodicJobs: PeriodicJobs(opts),
		Logger:       logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
