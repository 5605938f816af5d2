package worker

import (
	"context"
	"exposure/internal/scanner"
	"fmt"

	"github.com/riverqueue/river"
)

// ReaperWorker fails scans left running past their deadline.
type ReaperWorker struct {
	river.WorkerDefaults[scanner.ReapJobArgs]

	scanner scanner.Scanner
}

func NewReaperWorker(scanner scanner.Scanner) *ReaperWorker {
	return &ReaperWorker{scanner: scanner}
}

func (w *ReaperWorker) Work(ctx context.Context, _ *river.Job[scanner.ReapJobArgs]) error {
	if _, err := w.scanner.ReapStale(ctx); err != nil {
		return fmt.Errorf("could not reap stale scans: %w", err)
	}

	return nil
}
