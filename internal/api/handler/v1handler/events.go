package v1handler

import (
	"exposure/pkg/logger"
	"exposure/pkg/serrors"
	"net/http"
	"slices"
	"time"

	"github.com/go-faster/jx"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxClientFrame = 512
)

func (h *Handler) upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     h.checkOrigin,
	}
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(h.opts.AllowedOrigins) == 0 || slices.Contains(h.opts.AllowedOrigins, "*") {
		return true
	}

	return slices.Contains(h.opts.AllowedOrigins, origin)
}

// Events upgrades to a websocket and relays the caller's scan events until
// either side goes away. Client frames are read only to observe pongs and close.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := GetUserIDFromContext(ctx)

	sub, err := h.deps.Subscriber.Subscribe(ctx, userID)
	if err != nil {
		NewError(ctx, w, serrors.Wrap(serrors.ErrUnavailable, err, "Event stream is unavailable."))

		return
	}
	defer func() { _ = sub.Close() }()

	conn, err := h.upgrader().Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already answered the request
		logger.Debug(ctx, "could not upgrade event stream", zap.Error(err))

		return
	}
	defer func() { _ = conn.Close() }()

	closed := make(chan struct{})
	go func() {
		defer close(closed)

		conn.SetReadLimit(maxClientFrame)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	logger.Debug(ctx, "event stream opened")
	for {
		select {
		case <-closed:
			logger.Debug(ctx, "event stream closed by client")

			return
		case <-ctx.Done():
			return
		case ev, ok := <-sub.Events():
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "event channel closed"),
					time.Now().Add(writeWait))

				return
			}
			if ev.UserID != userID {
				continue
			}

			var e jx.Encoder
			EncodeEvent(&e, ev)
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, e.Bytes()); err != nil {
				logger.Debug(ctx, "could not write event", zap.Error(err))

				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
