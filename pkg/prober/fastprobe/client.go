// Package fastprobe provides a prober.Client implementation backed by fasthttp.
package fastprobe

import (
	"context"
	"crypto/tls"
	"errors"
	"exposure/pkg/prober"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	// DefaultUserAgent is sent when Options.UserAgent is empty.
	DefaultUserAgent = "exposure-probe/1.0"
	// DefaultReadBufferSize bounds the response headers a probe can read.
	// Real sites routinely send CSP, HSTS and cookie headers past fasthttp's 4KiB default.
	DefaultReadBufferSize = 64 << 10
)

// ErrNoDeadline is returned when Head is called with a context that has no deadline
// and the client has no fallback timeout configured.
var ErrNoDeadline = errors.New("probe context has no deadline")

// Options configures the underlying fasthttp client.
type Options struct {
	// UserAgent is sent with every probe.
	UserAgent string
	// FallbackTimeout bounds a probe whose context carries no deadline.
	FallbackTimeout time.Duration
	// MaxConnsPerHost caps open connections to a single probed host. Zero means fasthttp's default.
	MaxConnsPerHost int
	// MaxConnWaitTimeout is how long a probe waits for a free connection once
	// MaxConnsPerHost is reached. Zero waits up to FallbackTimeout; the probe
	// deadline bounds the wait either way.
	MaxConnWaitTimeout time.Duration
	// ReadBufferSize limits the size of response headers. Zero means DefaultReadBufferSize.
	ReadBufferSize int
	// TLSConfig overrides the TLS settings used for https targets.
	TLSConfig *tls.Config
}

// Client performs HEAD requests with fasthttp. It is safe for concurrent use.
type Client struct {
	client          *fasthttp.Client
	fallbackTimeout time.Duration
}

// Ensure Client conforms to the prober.Client interface at compile time.
var _ prober.Client = (*Client)(nil)

// New constructs a Client from options.
func New(opts Options) *Client {
	ua := opts.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}

	readBufferSize := opts.ReadBufferSize
	if readBufferSize <= 0 {
		readBufferSize = DefaultReadBufferSize
	}
	connWait := opts.MaxConnWaitTimeout
	if connWait <= 0 {
		connWait = opts.FallbackTimeout
	}

	return &Client{
		client: &fasthttp.Client{
			Name:                   ua,
			MaxConnsPerHost:        opts.MaxConnsPerHost,
			MaxConnWaitTimeout:     connWait,
			ReadBufferSize:         readBufferSize,
			TLSConfig:              opts.TLSConfig,
			DisablePathNormalizing: true, // probe paths must go out exactly as catalogued
		},
		fallbackTimeout: opts.FallbackTimeout,
	}
}

// Head sends a HEAD request and returns the response status code. Redirects are
// not followed, so a 3xx is reported as-is.
func (c *Client) Head(ctx context.Context, URL string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("probe canceled: %w", err)
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		if c.fallbackTimeout <= 0 {
			return 0, ErrNoDeadline
		}
		deadline = time.Now().Add(c.fallbackTimeout)
	}

	// fasthttp only honours deadlines; the request runs aside so a canceled
	// ctx returns at once. The goroutine owns req and resp until it finishes.
	done := make(chan headResult, 1)
	go func() {
		req := fasthttp.AcquireRequest()
		resp := fasthttp.AcquireResponse()
		defer fasthttp.ReleaseRequest(req)
		defer fasthttp.ReleaseResponse(resp)

		req.SetRequestURI(URL)
		req.Header.SetMethod(fasthttp.MethodHead)
		resp.SkipBody = true

		err := c.client.DoDeadline(req, resp, deadline)
		done <- headResult{status: resp.StatusCode(), err: err}
	}()

	var res headResult
	select {
	case res = <-done:
	case <-ctx.Done():
		// an answer that raced the deadline still counts
		select {
		case res = <-done:
		default:
			return 0, fmt.Errorf("probe canceled: %w", ctx.Err())
		}
	}

	if res.err != nil {
		return 0, fmt.Errorf("could not probe %s: %w", URL, res.err)
	}

	return res.status, nil
}

type headResult struct {
	status int
	err    error
}

// CloseIdleConnections releases pooled connections.
func (c *Client) CloseIdleConnections() {
	c.client.CloseIdleConnections()
}
