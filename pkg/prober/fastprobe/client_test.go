package fastprobe_test

import (
	"context"
	"crypto/tls"
	"exposure/pkg/prober/fastprobe"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTLSServer(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewTLSServer(h)
	t.Cleanup(srv.Close)

	return srv
}

func newClient() *fastprobe.Client {
	return fastprobe.New(fastprobe.Options{
		UserAgent:       "probe-test",
		FallbackTimeout: time.Second,
		TLSConfig:       &tls.Config{InsecureSkipVerify: true}, //nolint: gosec
	})
}

func TestClient_Head_ReturnsStatus(t *testing.T) {
	srv := newTLSServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodHead, r.Method)
		require.Equal(t, "probe-test", r.UserAgent())
		switch r.URL.Path {
		case "/.env":
			w.WriteHeader(http.StatusOK)
		case "/moved":
			w.Header().Set("Location", "/elsewhere")
			w.WriteHeader(http.StatusFound)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	c := newClient()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	status, err := c.Head(ctx, srv.URL+"/.env")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)

	status, err = c.Head(ctx, srv.URL+"/moved")
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, status, "redirects must not be followed")

	status, err = c.Head(ctx, srv.URL+"/.git/config")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, status)
}

func TestClient_Head_KeepsDotPaths(t *testing.T) {
	got := make(chan string, 1)
	srv := newTLSServer(t, func(w http.ResponseWriter, r *http.Request) {
		got <- r.URL.Path
	})
	c := newClient()

	_, err := c.Head(context.Background(), srv.URL+"/.idea/workspace.xml")
	require.NoError(t, err)
	require.Equal(t, "/.idea/workspace.xml", <-got)
}

func TestClient_Head_TimesOut(t *testing.T) {
	srv := newTLSServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	})
	c := newClient()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.Head(ctx, srv.URL+"/slow")
	require.Error(t, err)
	require.Less(t, time.Since(start), 250*time.Millisecond)
}

func TestClient_Head_CanceledContext(t *testing.T) {
	c := newClient()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Head(ctx, "https://example.invalid/.env")
	require.ErrorIs(t, err, context.Canceled)
}

func TestClient_Head_ConnectionRefused(t *testing.T) {
	srv := httptest.NewTLSServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := newClient().Head(context.Background(), addr+"/.env")
	require.Error(t, err)
}

func TestClient_Head_NoDeadlineWithoutFallback(t *testing.T) {
	c := fastprobe.New(fastprobe.Options{})

	_, err := c.Head(context.Background(), "https://example.invalid/")
	require.ErrorIs(t, err, fastprobe.ErrNoDeadline)
}

func TestClient_Head_LargeResponseHeaders(t *testing.T) {
	srv := newTLSServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", "default-src 'self'; "+strings.Repeat("a", 5000))
		w.WriteHeader(http.StatusOK)
	})

	status, err := newClient().Head(context.Background(), srv.URL+"/.env")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, status)
}

func TestClient_Head_ReadBufferSizeLimitsHeaders(t *testing.T) {
	srv := newTLSServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Set-Cookie", "session="+strings.Repeat("b", 8000))
		w.WriteHeader(http.StatusOK)
	})
	c := fastprobe.New(fastprobe.Options{
		FallbackTimeout: time.Second,
		ReadBufferSize:  4096,
		TLSConfig:       &tls.Config{InsecureSkipVerify: true}, //nolint: gosec
	})

	_, err := c.Head(context.Background(), srv.URL+"/.env")
	require.Error(t, err)
}

func TestClient_Head_CancelAbortsInFlight(t *testing.T) {
	srv := newTLSServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	c := newClient()

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	start := time.Now()
	_, err := c.Head(ctx, srv.URL+"/slow")
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, time.Since(start), 500*time.Millisecond)
}
