// Package middleware holds chi-compatible HTTP middleware for the BioFlow
// API server.
package middleware

import (
	"log"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Logger logs one line per request: method, path, status, response size and
// latency. It wraps the ResponseWriter with chi's WrapResponseWriter so the
// status and byte count are visible after the handler runs, and pulls the
// request ID chimiddleware.RequestID stashed in the context so the two
// middlewares' output lines up.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		reqID := chimiddleware.GetReqID(r.Context())
		log.Printf("%s %s %s %d %dB %s", reqID, r.Method, r.URL.Path,
			ww.Status(), ww.BytesWritten(), time.Since(start))
	})
}
