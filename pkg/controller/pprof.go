package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is where Pprof must be mounted; pprof.Index resolves named
// profiles (heap, goroutine, ...) relative to it.
const PprofPrefix = "/debug/pprof/"

// Pprof returns a handler serving net/http/pprof under PprofPrefix.
func Pprof() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(PprofPrefix, pprof.Index)
	mux.HandleFunc(PprofPrefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc(PprofPrefix+"profile", pprof.Profile)
	mux.HandleFunc(PprofPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc(PprofPrefix+"trace", pprof.Trace)

	return mux
}
