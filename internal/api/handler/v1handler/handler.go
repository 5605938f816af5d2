// Package v1handler implements the v1 HTTP surface: scan submission and
// history, the pattern catalog and the live event stream.
package v1handler

import (
	"context"
	"exposure/internal/scanner"
	"exposure/pkg/logger"
	"exposure/pkg/notifier"
	"exposure/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// EventsPattern is the route of the event stream. It is served outside the
// request timeout because the connection is long-lived.
const EventsPattern = "GET /v1/events"

type Deps struct {
	Scanner    scanner.Scanner
	Subscriber notifier.Subscriber
}

// Options tune the handler.
type Options struct {
	// AllowedOrigins restricts which browser origins may open the event stream.
	// Empty or "*" allows any origin.
	AllowedOrigins []string
}

type Handler struct {
	deps Deps
	opts Options
}

func New(deps Deps, opts Options) *Handler {
	return &Handler{deps: deps, opts: opts}
}

// Register mounts every v1 route on mux behind sec.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	mux.Handle("POST /v1/scans", sec.Authenticate(http.HandlerFunc(h.CreateScan)))
	mux.Handle("GET /v1/scans", sec.Authenticate(http.HandlerFunc(h.ListScans)))
	mux.Handle("GET /v1/scans/{id}", sec.Authenticate(http.HandlerFunc(h.GetScan)))
	mux.Handle("GET /v1/patterns", sec.Authenticate(http.HandlerFunc(h.ListPatterns)))
}

// RegisterStream mounts the event stream on mux behind sec.
func (h *Handler) RegisterStream(mux *http.ServeMux, sec *SecHandler) {
	mux.Handle(EventsPattern, sec.AuthenticateStream(http.HandlerFunc(h.Events)))
}

// NewError writes err as the uniform error envelope. The status comes from the
// error kind; unclassified errors are reported as 500 without their details.
func NewError(ctx context.Context, w http.ResponseWriter, err error) {
	status := serrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err), zap.Int("status", status))
	}

	var e jx.Encoder
	encodeError(&e, serrors.PublicMessage(err))
	writeJSON(ctx, w, status, e.Bytes())
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.Debug(ctx, "could not write response", zap.Error(err))
	}
}
