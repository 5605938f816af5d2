package scanner

import (
	"context"
	"errors"
	"exposure/internal/config"
	"exposure/internal/exposure"
	"exposure/pkg/domain"
	"exposure/pkg/logger"
	"exposure/pkg/notifier"
	"exposure/pkg/serrors"
	"exposure/pkg/storage"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	// DefaultPageSize is used when a listing does not ask for a limit.
	DefaultPageSize = 20
	// MaxPageSize caps a single listing page.
	MaxPageSize = 100

	instrumentationName = "exposure/internal/scanner"
)

// ErrMissingDomain is returned by Start for a blank domain.
var ErrMissingDomain = serrors.With(serrors.ErrBadRequest, "Domain is required in the request body.")

// Options configure the scan lifecycle. These settings are typically derived
// from application configuration.
type Options struct {
	// StaleAfter is how long a scan may stay running before ReapStale fails it.
	StaleAfter time.Duration
	// FailTimeout bounds the failed write issued after the run context ended.
	FailTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		StaleAfter:  cfg.Scanner.StaleAfter,
		FailTimeout: 10 * time.Second,
	}
}

// scanner is the concrete implementation of the Scanner interface.
// It coordinates persistence, probing and event publication for each scan.
type scanner struct {
	options   Options
	storage   storage.Storage
	engine    *exposure.Engine
	publisher notifier.Publisher

	tracer   trace.Tracer
	scans    metric.Int64Counter
	findings metric.Int64Counter
}

// Start records a running scan for rawDomain and enqueues its background run in
// the same transaction. The caller gets the scan back as soon as it is stored;
// probing happens later in a worker.
func (s *scanner) Start(ctx context.Context, userID domain.UserID, rawDomain string) (*domain.Scan, error) {
	if strings.TrimSpace(rawDomain) == "" {
		return nil, ErrMissingDomain
	}
	if exposure.NormalizeDomain(rawDomain) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "Domain %q has no hostname.", rawDomain)
	}

	var scan *domain.Scan
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		// a scan is never persisted as pending; it is running from its first write.
		res, err := tx.StoreScans(ctx, domain.Scan{
			UserID: userID,
			Domain: rawDomain,
			Status: domain.ScanStatusRunning,
		})
		if err != nil {
			return fmt.Errorf("could not store scan: %w", err)
		}
		scan = &res[0]

		if _, err := tx.AddJob(ctx, JobArgs{
			ScanID: scan.ID,
			UserID: userID,
			Domain: rawDomain,
		}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not start scan: %w", err)
	}

	s.count(ctx, domain.ScanStatusRunning)
	s.publish(ctx, domain.Event{
		Type:   domain.EventScanRunning,
		ScanID: scan.ID,
		UserID: scan.UserID,
		Status: scan.Status,
		At:     scan.CreatedAt,
	})

	return scan, nil
}

// Run probes the domain of a running scan and moves the scan to completed with
// its findings, or to failed. It returns nil once the scan reached a terminal
// state. An error means the terminal write itself could not be made, or the
// scan had already left running.
func (s *scanner) Run(ctx context.Context, args JobArgs) error {
	ctx, span := s.tracer.Start(ctx, "scanner.Run", trace.WithAttributes(
		attribute.String("scan.id", args.ScanID.String()),
		attribute.String("scan.domain", args.Domain),
	))
	defer span.End()
	ctx = logger.WithFields(ctx,
		zap.Stringer("scanID", args.ScanID),
		zap.Stringer("userID", args.UserID),
		zap.String("domain", args.Domain))

	findings, err := s.probe(ctx, args)
	if err == nil {
		var scan *domain.Scan
		scan, err = s.complete(ctx, args, findings)
		if err == nil {
			logger.Info(ctx, "scan completed", zap.Int("findings", len(findings)))
			s.count(ctx, domain.ScanStatusCompleted)
			s.countFindings(ctx, findings)
			s.publishCompleted(ctx, scan, findings)

			return nil
		}
		if errors.Is(err, serrors.ErrConflict) {
			// the scan was failed by someone else (e.g. the reaper); its state is final.
			logger.Warn(ctx, "scan left running before completion", zap.Error(err))
			span.SetStatus(codes.Error, err.Error())

			return err
		}
	}

	logger.Error(ctx, "scan failed", zap.Error(err))
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	scan, failErr := s.fail(ctx, args)
	if failErr != nil {
		logger.Error(ctx, "could not mark scan failed", zap.Error(failErr))

		return fmt.Errorf("could not mark scan failed after %w: %w", err, failErr)
	}
	if scan == nil {
		return nil
	}

	s.count(ctx, domain.ScanStatusFailed)
	s.publish(context.WithoutCancel(ctx), domain.Event{
		Type:   domain.EventScanFailed,
		ScanID: scan.ID,
		UserID: scan.UserID,
		Status: scan.Status,
		At:     scan.UpdatedAt,
	})

	return nil
}

// probe runs the engine for the scan's domain. A panic inside probing is
// turned into an error so the scan still reaches failed.
func (s *scanner) probe(ctx context.Context, args JobArgs) (findings []domain.Finding, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("probing panicked: %v", p)
		}
	}()

	found, err := s.engine.Scan(ctx, args.Domain)
	if err != nil {
		return nil, fmt.Errorf("could not probe domain: %w", err)
	}

	return exposure.Aggregate(found, args.ScanID, args.UserID), nil
}

// complete persists findings and the completed status atomically. The scan is
// only ever observed completed together with all of its findings.
func (s *scanner) complete(ctx context.Context, args JobArgs, findings []domain.Finding) (*domain.Scan, error) {
	var scan *domain.Scan
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.StoreFindings(ctx, findings...); err != nil {
			return fmt.Errorf("could not store findings: %w", err)
		}

		updated, err := tx.UpdateScanStatus(ctx, args.ScanID, domain.ScanStatusRunning, domain.ScanStatusCompleted)
		if err != nil {
			return fmt.Errorf("could not mark scan completed: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrConflict, "scan %s is no longer running", args.ScanID)
		}
		scan = updated

		return nil
	}); err != nil {
		return nil, err
	}

	return scan, nil
}

// fail moves the scan from running to failed. It uses a context detached from
// the run so an interrupted run still records its outcome. A nil scan means
// the scan was already terminal.
func (s *scanner) fail(ctx context.Context, args JobArgs) (*domain.Scan, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.options.FailTimeout)
	defer cancel()

	scan, err := s.storage.UpdateScanStatus(ctx, args.ScanID, domain.ScanStatusRunning, domain.ScanStatusFailed)
	if err != nil {
		return nil, err
	}

	return scan, nil
}

// ReapStale fails every scan that has been running for longer than StaleAfter,
// covering runs lost to a crash or a dropped job.
func (s *scanner) ReapStale(ctx context.Context) (int, error) {
	reaped, err := s.storage.FailStaleScans(ctx, time.Now().Add(-s.options.StaleAfter))
	if err != nil {
		return 0, fmt.Errorf("could not fail stale scans: %w", err)
	}
	if len(reaped) == 0 {
		return 0, nil
	}

	events := make([]domain.Event, 0, len(reaped))
	for _, scan := range reaped {
		s.count(ctx, domain.ScanStatusFailed)
		events = append(events, domain.Event{
			Type:   domain.EventScanFailed,
			ScanID: scan.ID,
			UserID: scan.UserID,
			Status: scan.Status,
			At:     scan.UpdatedAt,
		})
	}
	s.publish(ctx, events...)
	logger.Warn(ctx, "failed stale scans", zap.Int("count", len(reaped)))

	return len(reaped), nil
}

// UserScans returns a page of scans for the given user filtered by status, each
// with its findings. It supports cursor-based pagination using an RFC3339
// timestamp string and returns the next cursor when more results are available.
func (s *scanner) UserScans(ctx context.Context,
	userID domain.UserID,
	status domain.ScanStatus,
	cursor string,
	limit uint) ([]domain.Scan, string, error) {
	if status != "" && !status.Valid() {
		return nil, "", serrors.With(serrors.ErrBadRequest, "invalid status %q", status)
	}

	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	switch {
	case limit == 0:
		limit = DefaultPageSize
	case limit > MaxPageSize:
		limit = MaxPageSize
	}

	page, err := s.storage.UserScans(ctx, userID, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user scans: %w", err)
	}
	if err := s.attachFindings(ctx, page.Scans); err != nil {
		return nil, "", err
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.UTC().Format(time.RFC3339Nano)
	}

	return page.Scans, next, nil
}

// Result fetches a single scan with its findings for the given user. It returns
// a not-found error when no matching scan exists.
func (s *scanner) Result(ctx context.Context, userID domain.UserID, scanID domain.ScanID) (*domain.Scan, error) {
	res, err := s.storage.ScanByID(ctx, userID, scanID)
	if err != nil {
		return nil, fmt.Errorf("could not get scan results: %w", err)
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "scan not found")
	}

	scans := []domain.Scan{*res}
	if err := s.attachFindings(ctx, scans); err != nil {
		return nil, err
	}

	return &scans[0], nil
}

// Patterns returns the catalog scans are probed against.
func (s *scanner) Patterns() []exposure.Pattern {
	return s.engine.Patterns()
}

func (s *scanner) attachFindings(ctx context.Context, scans []domain.Scan) error {
	if len(scans) == 0 {
		return nil
	}

	IDs := make([]domain.ScanID, 0, len(scans))
	for _, scan := range scans {
		IDs = append(IDs, scan.ID)
	}

	byScan, err := s.storage.FindingsByScanIDs(ctx, IDs...)
	if err != nil {
		return fmt.Errorf("could not get findings: %w", err)
	}
	for i := range scans {
		scans[i].Findings = byScan[scans[i].ID]
	}

	return nil
}

func (s *scanner) publishCompleted(ctx context.Context, scan *domain.Scan, findings []domain.Finding) {
	events := make([]domain.Event, 0, len(findings)+1)
	for i := range findings {
		events = append(events, domain.Event{
			Type:    domain.EventFindingCreated,
			ScanID:  scan.ID,
			UserID:  scan.UserID,
			Finding: &findings[i],
			At:      scan.UpdatedAt,
		})
	}
	events = append(events, domain.Event{
		Type:   domain.EventScanCompleted,
		ScanID: scan.ID,
		UserID: scan.UserID,
		Status: scan.Status,
		At:     scan.UpdatedAt,
	})

	s.publish(ctx, events...)
}

// publish is best effort: the stored state is the source of truth and a lost
// event never changes a scan's outcome.
func (s *scanner) publish(ctx context.Context, events ...domain.Event) {
	if err := s.publisher.Publish(ctx, events...); err != nil {
		logger.Warn(ctx, "could not publish scan events", zap.Error(err), zap.Int("events", len(events)))
	}
}

func (s *scanner) count(ctx context.Context, status domain.ScanStatus) {
	s.scans.Add(ctx, 1, metric.WithAttributes(attribute.String("status", string(status))))
}

func (s *scanner) countFindings(ctx context.Context, findings []domain.Finding) {
	for _, f := range findings {
		s.findings.Add(ctx, 1, metric.WithAttributes(attribute.String("severity", string(f.Severity))))
	}
}

// New creates a new Scanner backed by the provided storage, probing through
// engine and announcing transitions on publisher.
func New(storage storage.Storage, engine *exposure.Engine, publisher notifier.Publisher, options Options) (Scanner, error) {
	meter := otel.Meter(instrumentationName)
	scans, err := meter.Int64Counter("exposure.scans",
		metric.WithDescription("Scan lifecycle transitions by status."))
	if err != nil {
		return nil, fmt.Errorf("could not create scans counter: %w", err)
	}
	findings, err := meter.Int64Counter("exposure.findings",
		metric.WithDescription("Confirmed findings by severity."))
	if err != nil {
		return nil, fmt.Errorf("could not create findings counter: %w", err)
	}
	if options.FailTimeout <= 0 {
		options.FailTimeout = 10 * time.Second
	}

	return &scanner{
		options:   options,
		storage:   storage,
		engine:    engine,
		publisher: publisher,
		tracer:    otel.Tracer(instrumentationName),
		scans:     scans,
		findings:  findings,
	}, nil
}
