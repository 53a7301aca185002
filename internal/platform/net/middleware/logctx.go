package middleware

import (
	"net/http"

	"genailab/internal/platform/logger"
	pnet "genailab/internal/platform/net"
)

// LogContext tags the request logger with the id RequestID stored and echoes it
// on the response. Mount it after RequestID
func LogContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := pnet.RequestID(r.Context())
		if reqID == "" {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set(pnet.HeaderRequestID, reqID)
		next.ServeHTTP(w, r.WithContext(logger.WithRequest(r.Context(), reqID)))
	})
}
