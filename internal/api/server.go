// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the exposure scan service.
package api

import (
	_ "embed"
	"exposure/internal/api/handler/v1handler"
	"exposure/internal/config"
	"exposure/pkg/controller"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// timeoutBody is sent when a request exceeds RequestTimeout.
const timeoutBody = `{"error":"Request timed out."}`

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// SecHandlerOptions configures the security handler (authn) for v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds handling of every request except the event stream.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// CORSAllowedOrigins lists the browser origins allowed to call the API.
	CORSAllowedOrigins []string
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:               cfg.HTTP.Addr,
		ReadTimeout:        cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout:  cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:       cfg.HTTP.WriteTimeout,
		IdleTimeout:        cfg.HTTP.IdleTimeout,
		RequestTimeout:     cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:     cfg.HTTP.MaxHeaderBytes,
		MetricsPath:        cfg.HTTP.MetricsPath,
		CORSAllowedOrigins: cfg.HTTP.CORSAllowedOrigins,
	}
}

type Deps struct {
	v1handler.Deps
}

// NewHandler builds the root handler. It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes and the event stream
// - pprof endpoints for profiling
// Every response, errors and preflights included, passes through the CORS
// middleware, which is outermost.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	v1 := v1handler.New(deps.Deps, v1handler.Options{AllowedOrigins: opts.CORSAllowedOrigins})

	// bounded routes
	mux := http.NewServeMux()
	// prometheus metrics server
	mux.Handle("GET "+opts.MetricsPath, promhttp.Handler())
	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("GET /v1/docs/", v5emb.New(
		"Exposure Scan Service",
		"/specs/v1.yaml",
		"/v1/docs/",
	))
	// v1 api
	v1.Register(mux, secHandler)

	root := http.NewServeMux()
	if opts.RequestTimeout > 0 {
		root.Handle("/", http.TimeoutHandler(mux, opts.RequestTimeout, timeoutBody))
	} else {
		root.Handle("/", mux)
	}
	// long-lived routes: the stream hijacks the connection and pprof profiles run for seconds
	v1.RegisterStream(root, secHandler)
	root.Handle(controller.PprofPrefix, controller.Pprof())

	// logger
	handler := controller.WithLogger(root)

	// cors
	handler = controller.WithCORS(opts.CORSAllowedOrigins)(handler)

	return handler, nil
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
