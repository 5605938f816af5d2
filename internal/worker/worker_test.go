package worker_test

import (
	"context"
	"errors"
	"exposure/internal/scanner"
	mockscanner "exposure/internal/scanner/mock"
	"exposure/internal/worker"
	"exposure/pkg/domain"
	"exposure/pkg/serrors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func makeJob(id int64) *river.Job[scanner.JobArgs] {
	return &river.Job[scanner.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args: scanner.JobArgs{
			ScanID: domain.ScanID(uuid.New()),
			UserID: domain.UserID(uuid.New()),
			Domain: "example.com",
		},
	}
}

func TestScanWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockscanner.NewMockScanner(ctrl)
	w := worker.NewScanWorker(mock, time.Minute)

	job := makeJob(1)
	mock.EXPECT().Run(gomock.Any(), job.Args).Return(nil)

	require.NoError(t, w.Work(context.Background(), job))
}

func TestScanWorker_Work_ConflictCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockscanner.NewMockScanner(ctrl)
	w := worker.NewScanWorker(mock, time.Minute)

	mock.EXPECT().Run(gomock.Any(), gomock.Any()).Return(serrors.With(serrors.ErrConflict, "no longer running"))

	err := w.Work(context.Background(), makeJob(2))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestScanWorker_Work_GenericErrorWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockscanner.NewMockScanner(ctrl)
	w := worker.NewScanWorker(mock, time.Minute)

	base := errors.New("could not mark scan failed")
	mock.EXPECT().Run(gomock.Any(), gomock.Any()).Return(base)

	err := w.Work(context.Background(), makeJob(3))
	require.ErrorIs(t, err, base)
	require.ErrorContains(t, err, "could not run scan")
}

func TestScanWorker_Timeout(t *testing.T) {
	w := worker.NewScanWorker(nil, 90*time.Second)

	require.Equal(t, 90*time.Second, w.Timeout(makeJob(4)))
}

func TestReaperWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockscanner.NewMockScanner(ctrl)
	w := worker.NewReaperWorker(mock)

	mock.EXPECT().ReapStale(gomock.Any()).Return(3, nil)
	require.NoError(t, w.Work(context.Background(), &river.Job[scanner.ReapJobArgs]{JobRow: &rivertype.JobRow{ID: 5}}))

	mock.EXPECT().ReapStale(gomock.Any()).Return(0, errors.New("db down"))
	require.ErrorContains(t, w.Work(context.Background(), &river.Job[scanner.ReapJobArgs]{JobRow: &rivertype.JobRow{ID: 6}}),
		"could not reap stale scans")
}

func TestPeriodicJobs(t *testing.T) {
	require.Empty(t, worker.PeriodicJobs(worker.Options{}))
	require.Len(t, worker.PeriodicJobs(worker.Options{ReapInterval: time.Minute}), 1)
}

func TestJobArgs_InsertOpts(t *testing.T) {
	opts := scanner.JobArgs{}.InsertOpts()

	require.Equal(t, 1, opts.MaxAttempts)
	require.True(t, opts.UniqueOpts.ByArgs)
	require.Equal(t, "ExposureScanJob", scanner.JobArgs{}.Kind())
	require.Equal(t, "ReapStaleScansJob", scanner.ReapJobArgs{}.Kind())
}
