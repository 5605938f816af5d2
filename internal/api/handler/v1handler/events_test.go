package v1handler_test

import (
	"context"
	"errors"
	"exposure/internal/api/handler/v1handler"
	"exposure/pkg/domain"
	"exposure/pkg/notifier"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

type fakeSubscription struct {
	ch   chan domain.Event
	once sync.Once
}

func (s *fakeSubscription) Events() <-chan domain.Event { return s.ch }

func (s *fakeSubscription) Close() error {
	s.once.Do(func() { close(s.ch) })

	return nil
}

type fakeSubscriber struct {
	sub    *fakeSubscription
	err    error
	userID chan domain.UserID
}

func (f *fakeSubscriber) Subscribe(_ context.Context, userID domain.UserID) (notifier.Subscription, error) {
	f.userID <- userID
	if f.err != nil {
		return nil, f.err
	}

	return f.sub, nil
}

func newEventServer(t *testing.T, sub notifier.Subscriber, origins ...string) (*httptest.Server, string, domain.UserID) {
	t.Helper()

	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)
	uid := uuid.New()
	now := time.Now()

	mux := http.NewServeMux()
	v1handler.New(v1handler.Deps{Subscriber: sub}, v1handler.Options{AllowedOrigins: origins}).RegisterStream(mux, sh)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv, signJWTRS256(t, priv, uid.String(), now, now.Add(time.Hour)), domain.UserID(uid)
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/events"
}

func TestEvents_RelaysOwnEvents(t *testing.T) {
	sub := &fakeSubscriber{
		sub:    &fakeSubscription{ch: make(chan domain.Event, 4)},
		userID: make(chan domain.UserID, 1),
	}
	srv, token, userID := newEventServer(t, sub)

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(srv)+"?access_token="+token, nil)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	defer func() { _ = conn.Close() }()

	require.Equal(t, userID, <-sub.userID)

	scanID := domain.ScanID(uuid.New())
	at := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	// events of other users never reach this stream
	sub.sub.ch <- domain.Event{Type: domain.EventScanRunning, ScanID: scanID, UserID: domain.UserID(uuid.New()), At: at}
	sub.sub.ch <- domain.Event{
		Type:   domain.EventFindingCreated,
		ScanID: scanID,
		UserID: userID,
		Finding: &domain.Finding{
			URL:         "https://example.com/.env",
			Path:        "/.env",
			Description: "Publicly exposed .env file",
			Severity:    domain.SeverityCritical,
			StatusCode:  200,
		},
		At: at,
	}
	sub.sub.ch <- domain.Event{Type: domain.EventScanCompleted, ScanID: scanID, UserID: userID, Status: domain.ScanStatusCompleted, At: at}

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	require.JSONEq(t, `{
		"type": "finding.created",
		"scanId": "`+scanID.String()+`",
		"userId": "`+userID.String()+`",
		"finding": {
			"url": "https://example.com/.env",
			"path": "/.env",
			"description": "Publicly exposed .env file",
			"severity": "Critical",
			"statusCode": 200
		},
		"at": "2025-05-01T10:00:00Z"
	}`, string(msg))

	_, msg, err = conn.ReadMessage()
	require.NoError(t, err)
	require.JSONEq(t, `{
		"type": "scan.completed",
		"scanId": "`+scanID.String()+`",
		"userId": "`+userID.String()+`",
		"status": "completed",
		"at": "2025-05-01T10:00:00Z"
	}`, string(msg))
}

func TestEvents_ClosedSubscriptionClosesStream(t *testing.T) {
	sub := &fakeSubscriber{
		sub:    &fakeSubscription{ch: make(chan domain.Event)},
		userID: make(chan domain.UserID, 1),
	}
	srv, token, _ := newEventServer(t, sub)

	header := http.Header{"Authorization": []string{"Bearer " + token}}
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(srv), header)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	defer func() { _ = conn.Close() }()

	<-sub.userID
	require.NoError(t, sub.sub.Close())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, _, err = conn.ReadMessage()
	require.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "unexpected error: %v", err)
}

func TestEvents_Unauthenticated(t *testing.T) {
	srv, _, _ := newEventServer(t, &fakeSubscriber{userID: make(chan domain.UserID, 1)})

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestEvents_SubscribeFailure(t *testing.T) {
	srv, token, _ := newEventServer(t, &fakeSubscriber{
		err:    errors.New("redis down"),
		userID: make(chan domain.UserID, 1),
	})

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv)+"?access_token="+token, nil)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestEvents_ForeignOriginRejected(t *testing.T) {
	sub := &fakeSubscriber{
		sub:    &fakeSubscription{ch: make(chan domain.Event)},
		userID: make(chan domain.UserID, 1),
	}
	srv, token, _ := newEventServer(t, sub, "https://app.example.com")

	header := http.Header{"Origin": []string{"https://evil.example.net"}}
	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv)+"?access_token="+token, header)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}
