package serrors_test

import (
	"errors"
	"exposure/pkg/serrors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrUnauthorized,
		serrors.ErrForbidden,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
		serrors.ErrTimeout,
		serrors.ErrUnavailable,
		serrors.ErrRateLimited,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	require.Equal(t, "scan 42 not found", serrors.With(serrors.ErrNotFound, "scan %d not found", 42).Error())
	require.Equal(t, "getting scan: db down", serrors.Wrap(serrors.ErrNotFound, base, "getting scan").Error())
	require.Equal(t, "NOT_FOUND", serrors.KindOnly(serrors.ErrNotFound).Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "no token")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("could not start scan: %w", serrors.With(serrors.ErrBadRequest, "domain is required"))
	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(wrapped))
	require.Nil(t, serrors.KindOf(errors.New("plain")))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", serrors.With(serrors.ErrBadRequest, "x"), http.StatusBadRequest},
		{"unauthorized", serrors.KindOnly(serrors.ErrUnauthorized), http.StatusUnauthorized},
		{"forbidden", serrors.KindOnly(serrors.ErrForbidden), http.StatusForbidden},
		{"not found wrapped", fmt.Errorf("outer: %w", serrors.KindOnly(serrors.ErrNotFound)), http.StatusNotFound},
		{"conflict", serrors.KindOnly(serrors.ErrConflict), http.StatusConflict},
		{"rate limited", serrors.KindOnly(serrors.ErrRateLimited), http.StatusTooManyRequests},
		{"unavailable", serrors.KindOnly(serrors.ErrUnavailable), http.StatusServiceUnavailable},
		{"timeout", serrors.KindOnly(serrors.ErrTimeout), http.StatusGatewayTimeout},
		{"internal", serrors.KindOnly(serrors.ErrInternal), http.StatusInternalServerError},
		{"plain error", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, serrors.HTTPStatus(tt.err))
		})
	}
}

func TestPublicMessage(t *testing.T) {
	require.Equal(t, "Domain is required in the request body.",
		serrors.PublicMessage(fmt.Errorf("could not start scan: %w",
			serrors.With(serrors.ErrBadRequest, "Domain is required in the request body."))))

	require.Equal(t, "invalid token",
		serrors.PublicMessage(serrors.Wrap(serrors.ErrUnauthorized, errors.New("signature mismatch"), "invalid token")))

	require.Equal(t, "NOT_FOUND", serrors.PublicMessage(serrors.KindOnly(serrors.ErrNotFound)))

	require.Equal(t, "Internal Server Error", serrors.PublicMessage(errors.New("pq: connection refused")))
	require.Equal(t, "Internal Server Error",
		serrors.PublicMessage(serrors.Wrap(serrors.ErrInternal, errors.New("secret"), "db exploded")))
}

func TestPublicMessage_KindSentinel(t *testing.T) {
	require.Equal(t, "NOT_FOUND", serrors.PublicMessage(serrors.ErrNotFound))
	require.Equal(t, "CONFLICT", serrors.PublicMessage(fmt.Errorf("wrapped: %w", serrors.ErrConflict)))
}
