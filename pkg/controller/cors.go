package controller

import (
	"net/http"
	"slices"
	"strings"
)

const (
	corsAllowHeaders  = "Authorization, Content-Type, Accept, Origin, Cache-Control, X-Client-Info, X-Request-Id"
	corsAllowMethods  = "GET, POST, OPTIONS"
	corsExposeHeaders = "X-Request-Id"
	corsMaxAge        = "600"
)

// WithCORS returns a middleware that sets CORS headers before the wrapped
// handler runs, so they are present on error responses too. OPTIONS preflight
// requests are answered with 204 No Content.
//
// An empty origins list, or one containing "*", allows any origin. Otherwise the
// request Origin is echoed back only when it is listed.
func WithCORS(origins []string) func(http.Handler) http.Handler {
	wildcard := len(origins) == 0 || slices.Contains(origins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if wildcard {
				h.Set("Access-Control-Allow-Origin", "*")
			} else {
				h.Add("Vary", "Origin")
				origin := r.Header.Get("Origin")
				if slices.ContainsFunc(origins, func(o string) bool { return strings.EqualFold(o, origin) }) {
					h.Set("Access-Control-Allow-Origin", origin)
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}
			h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
			h.Set("Access-Control-Allow-Methods", corsAllowMethods)
			h.Set("Access-Control-Expose-Headers", corsExposeHeaders)

			if r.Method == http.MethodOptions {
				h.Set("Access-Control-Max-Age", corsMaxAge)
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
