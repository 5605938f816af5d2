package exposure

import (
	"context"
	"exposure/pkg/domain"
	"exposure/pkg/logger"
	"exposure/pkg/metrics"
	"exposure/pkg/prober"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// DefaultProbeTimeout bounds a single probe, measured from its dispatch.
const DefaultProbeTimeout = 5 * time.Second

// DispatcherOptions tune the dispatcher. The zero value probes every candidate
// at once with DefaultProbeTimeout.
type DispatcherOptions struct {
	// Timeout bounds each probe independently.
	Timeout time.Duration
	// MaxConcurrency caps in-flight probes per dispatch. Zero means no cap.
	MaxConcurrency int
	// RatePerSecond caps probe starts across all dispatches. Zero disables it.
	RatePerSecond float64
}

// Dispatcher checks candidates concurrently and keeps the ones that answer.
// It is safe for concurrent use by multiple scans.
type Dispatcher struct {
	client         prober.Client
	timeout        time.Duration
	maxConcurrency int64
	limiter        *rate.Limiter
	probeDuration  metric.Float64Histogram
}

// NewDispatcher builds a Dispatcher around client.
func NewDispatcher(client prober.Client, opts DispatcherOptions) *Dispatcher {
	d := &Dispatcher{
		client:         client,
		timeout:        opts.Timeout,
		maxConcurrency: int64(opts.MaxConcurrency),
	}
	if d.timeout <= 0 {
		d.timeout = DefaultProbeTimeout
	}
	if opts.RatePerSecond > 0 {
		burst := max(1, int(opts.RatePerSecond))
		d.limiter = rate.NewLimiter(rate.Limit(opts.RatePerSecond), burst)
	}

	// a failing instrument falls back to a no-op one; probing never depends on it
	d.probeDuration, _ = otel.Meter("exposure/internal/exposure").Float64Histogram(
		"exposure.probe.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Duration of a single exposure probe"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...),
	)

	return d
}

// Confirmed is the single classification rule for a probe outcome: a response
// with a status below 400 means the path exists. Any error, and any 4xx or 5xx,
// means it does not.
func Confirmed(status int, err error) bool {
	return err == nil && status > 0 && status < 400
}

// Probe checks every candidate and returns a finding for each confirmed one, in
// candidate order. Per-probe failures are never returned; an error is returned
// only when ctx ends before all probes resolve.
func (d *Dispatcher) Probe(ctx context.Context, candidates []Candidate) ([]domain.Finding, error) {
	statuses := make([]int, len(candidates))

	var sem *semaphore.Weighted
	if d.maxConcurrency > 0 {
		sem = semaphore.NewWeighted(d.maxConcurrency)
	}

	var g errgroup.Group
	for i := range candidates {
		g.Go(func() error {
			if sem != nil {
				if err := sem.Acquire(ctx, 1); err != nil {
					return fmt.Errorf("could not acquire probe slot: %w", err)
				}
				defer sem.Release(1)
			}
			if d.limiter != nil {
				if err := d.limiter.Wait(ctx); err != nil {
					return fmt.Errorf("could not wait for probe rate limit: %w", err)
				}
			}

			statuses[i] = d.check(ctx, candidates[i].URL)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("probing interrupted: %w", err)
	}

	var findings []domain.Finding
	for i, c := range candidates {
		if statuses[i] == 0 {
			continue
		}

		findings = append(findings, domain.Finding{
			URL:         c.URL,
			Path:        c.Path,
			Description: c.Description,
			Severity:    c.Severity,
			StatusCode:  statuses[i],
		})
	}

	return findings, nil
}

// check runs one probe under its own deadline and returns the status when the
// candidate is confirmed, 0 otherwise.
func (d *Dispatcher) check(ctx context.Context, URL string) int {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	start := time.Now()
	status, err := d.head(ctx, URL)
	confirmed := Confirmed(status, err)

	if d.probeDuration != nil {
		d.probeDuration.Record(ctx, time.Since(start).Seconds(),
			metric.WithAttributes(attribute.Bool("confirmed", confirmed)))
	}

	if !confirmed {
		logger.Debug(ctx, "candidate not confirmed",
			zap.String("url", URL), zap.Int("status", status), zap.Error(err))

		return 0
	}

	return status
}

// head calls the client and turns a panic into an unconfirmed outcome so one bad
// probe never takes the process down.
func (d *Dispatcher) head(ctx context.Context, URL string) (status int, err error) {
	defer func() {
		if p := recover(); p != nil {
			status, err = 0, fmt.Errorf("probe panicked: %v", p)
		}
	}()

	return d.client.Head(ctx, URL)
}
