package worker

import (
	"context"
	"errors"
	"exposure/internal/scanner"
	"exposure/pkg/logger"
	"exposure/pkg/serrors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// ScanWorker runs one scan per job. The scan itself records its outcome, so a
// job only fails when that outcome could not be written.
type ScanWorker struct {
	river.WorkerDefaults[scanner.JobArgs]

	scanner scanner.Scanner
	timeout time.Duration
}

// NewScanWorker constructs a ScanWorker. A zero timeout keeps River's default.
func NewScanWorker(scanner scanner.Scanner, timeout time.Duration) *ScanWorker {
	return &ScanWorker{scanner: scanner, timeout: timeout}
}

// Timeout bounds a scan run. When it elapses the run is interrupted and the
// scan is failed.
func (w *ScanWorker) Timeout(*river.Job[scanner.JobArgs]) time.Duration {
	return w.timeout
}

// Work runs the scan and maps its error to a River action.
func (w *ScanWorker) Work(ctx context.Context, job *river.Job[scanner.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	if err := w.scanner.Run(ctx, job.Args); err != nil {
		if errors.Is(err, serrors.ErrConflict) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error in running scan",
			zap.Stringer("scanID", job.Args.ScanID), zap.Error(err))

		return fmt.Errorf("could not run scan: %w", err)
	}

	return nil
}
