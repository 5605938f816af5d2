package exposure_test

import (
	"context"
	"crypto/tls"
	"exposure/internal/exposure"
	"exposure/pkg/prober/fastprobe"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newFastEngine(t *testing.T, opts fastprobe.Options, timeout time.Duration) *exposure.Engine {
	t.Helper()

	opts.TLSConfig = &tls.Config{InsecureSkipVerify: true} //nolint: gosec
	client := fastprobe.New(opts)
	t.Cleanup(client.CloseIdleConnections)

	return exposure.NewEngine(exposure.NewDispatcher(client, exposure.DispatcherOptions{Timeout: timeout}), nil)
}

func hostOf(srv *httptest.Server) string {
	return strings.TrimPrefix(srv.URL, "https://")
}

func TestEngine_Scan_OverFasthttp_MixedOutcomes(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/.env":
			// real sites send header blocks past fasthttp's 4KiB default
			w.Header().Set("Content-Security-Policy", "default-src 'self'; "+strings.Repeat("c", 6000))
			w.WriteHeader(http.StatusOK)
		case "/.git/config":
			w.Header().Set("Location", "/login")
			w.WriteHeader(http.StatusMovedPermanently)
		case "/phpinfo.php":
			w.WriteHeader(http.StatusNoContent)
		case "/wp-config.php":
			w.WriteHeader(http.StatusForbidden)
		case "/server-status":
			w.WriteHeader(http.StatusInternalServerError)
		case "/.DS_Store", "/.idea/workspace.xml":
			conn, _, err := w.(http.Hijacker).Hijack()
			if err == nil {
				_ = conn.Close()
			}
		default:
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}
	}))
	t.Cleanup(srv.Close)

	engine := newFastEngine(t, fastprobe.Options{FallbackTimeout: time.Second}, 300*time.Millisecond)

	findings, err := engine.Scan(context.Background(), srv.URL+"/")
	require.NoError(t, err)

	got := make(map[string]int, len(findings))
	for _, f := range findings {
		require.Equal(t, "https://"+hostOf(srv)+f.Path, f.URL)
		got[f.Path] = f.StatusCode
	}
	require.Equal(t, map[string]int{
		"/.git/config": http.StatusMovedPermanently,
		"/.env":        http.StatusOK,
		"/phpinfo.php": http.StatusNoContent,
	}, got)
}

func TestEngine_Scan_OverFasthttp_SameHostScansAreIndependent(t *testing.T) {
	var (
		mu       sync.Mutex
		inFlight int
		peak     int
	)
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		inFlight++
		peak = max(peak, inFlight)
		mu.Unlock()

		time.Sleep(100 * time.Millisecond)

		mu.Lock()
		inFlight--
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	// fewer connections than the two scans have probes in flight
	engine := newFastEngine(t, fastprobe.Options{
		FallbackTimeout: 3 * time.Second,
		MaxConnsPerHost: 4,
	}, 3*time.Second)

	counts := make([]int, 2)
	var g errgroup.Group
	for i := range counts {
		g.Go(func() error {
			findings, err := engine.Scan(context.Background(), hostOf(srv))
			counts[i] = len(findings)

			return err
		})
	}
	require.NoError(t, g.Wait())

	require.Equal(t, []int{10, 10}, counts)
	mu.Lock()
	defer mu.Unlock()
	require.LessOrEqual(t, peak, 4)
}
