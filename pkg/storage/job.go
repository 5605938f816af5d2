package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background units of work. Inside a transaction the job
// becomes visible only when the transaction commits, so a scan and the job that
// finishes it are created together or not at all.
type JobStorage interface {
	// AddJob enqueues a job and reports whether it was inserted; false means a
	// unique duplicate already existed.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
