package scanner

import (
	"exposure/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs carries one scan's background run. It holds everything the run needs
// so the lifecycle never reads the scan back from storage.
type JobArgs struct {
	ScanID domain.ScanID `json:"scanId" river:"unique"`
	UserID domain.UserID `json:"userId"`
	// Domain is the raw user input; normalization happens in the run.
	Domain string `json:"domain"`
}

// Kind returns the River job kind used to register and dispatch the scan worker.
func (JobArgs) Kind() string { return "ExposureScanJob" }

// InsertOpts runs each scan exactly once. A failed scan is never retried; the
// user starts a new one.
func (JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// ReapJobArgs triggers one sweep for stale running scans.
type ReapJobArgs struct{}

func (ReapJobArgs) Kind() string { return "ReapStaleScansJob" }

func (ReapJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{MaxAttempts: 1}
}
