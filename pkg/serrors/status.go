package serrors

import (
	"errors"
	"net/http"
)

// statusByKind lists kinds in match order; the first one found in the chain wins.
var statusByKind = []struct { //nolint: gochecknoglobals
	kind   Kind
	status int
}{
	{ErrBadRequest, http.StatusBadRequest},
	{ErrUnauthorized, http.StatusUnauthorized},
	{ErrForbidden, http.StatusForbidden},
	{ErrNotFound, http.StatusNotFound},
	{ErrConflict, http.StatusConflict},
	{ErrRateLimited, http.StatusTooManyRequests},
	{ErrUnavailable, http.StatusServiceUnavailable},
	{ErrTimeout, http.StatusGatewayTimeout},
	{ErrInternal, http.StatusInternalServerError},
}

// KindOf returns the first semantic kind found in err's chain, or nil.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}

// HTTPStatus maps err to a response status code. Errors without a known kind
// are internal.
func HTTPStatus(err error) int {
	for _, m := range statusByKind {
		if errors.Is(err, m.kind) {
			return m.status
		}
	}

	return http.StatusInternalServerError
}

// PublicMessage returns the text that may be shown to a client. Only the
// message of the outermost semantic error is exposed; causes never leak.
// Internal errors get a generic text.
func PublicMessage(err error) string {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		return http.StatusText(status)
	}

	var se *Error
	if errors.As(err, &se) && se.msg != "" {
		return se.msg
	}
	if k := KindOf(err); k != nil {
		return k.Error()
	}

	return http.StatusText(status)
}
