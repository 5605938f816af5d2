// Package prober defines the transport used to check whether a URL exists
// without downloading it.
package prober

import "context"

// Client issues lightweight existence checks against third-party URLs.
//
//go:generate mockgen -package mockprober -source=interface.go -destination=mock/mockprober.go *
type Client interface {
	// Head sends a HEAD request to URL and returns the response status code.
	// The request must give up once ctx is done. A non-nil error means no
	// response was received at all (timeout, refused connection, DNS or TLS failure).
	Head(ctx context.Context, URL string) (int, error)
}

// Func adapts an ordinary function to the Client interface.
type Func func(ctx context.Context, URL string) (int, error)

// Head calls f(ctx, URL).
func (f Func) Head(ctx context.Context, URL string) (int, error) { return f(ctx, URL) }
