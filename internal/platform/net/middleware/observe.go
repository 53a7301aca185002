package middleware

import (
	"net/http"
	"time"

	"genailab/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ObserveFunc receives a finished request. The request still carries its routing context,
// so route templates can be read from it
type ObserveFunc func(r *http.Request, status int, elapsed time.Duration)

// Observe calls fn after every request with the written status and the time spent
func Observe(fn ObserveFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			fn(r, statusOf(ww), time.Since(start))
		})
	}
}

// AccessLog writes one line per request on the request logger, at warn when it took slow or longer
func AccessLog(slow time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			elapsed := time.Since(start)
			log := logger.C(r.Context())
			evt := log.Info()
			if slow > 0 && elapsed >= slow {
				evt = log.Warn()
			}
			evt.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", statusOf(ww)).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", elapsed).
				Msg("request done")
		})
	}
}

// handlers that never call WriteHeader answered 200
func statusOf(ww chimw.WrapResponseWriter) int {
	if s := ww.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}
