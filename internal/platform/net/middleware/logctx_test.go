package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"genailab/internal/platform/logger"
	"genailab/internal/platform/net/middleware"
)

func TestLogContext_CopiesRequestID(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := logger.C(r.Context()).Output(&buf)
		l.Error().Msg("inside")
	})
	h := middleware.RequestID()(middleware.LogContext(next))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "rid-77")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got != "rid-77" {
		t.Fatalf("X-Request-ID header = %q", got)
	}
	if !strings.Contains(buf.String(), `"request_id":"rid-77"`) {
		t.Fatalf("log line missing request id: %s", buf.String())
	}
}

func TestLogContext_NoRequestIDPassesThrough(t *testing.T) {
	var called bool
	h := middleware.LogContext(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if !called {
		t.Fatal("expected next to be called")
	}
	if rr.Header().Get("X-Request-ID") != "" {
		t.Fatal("did not expect a request id header")
	}
}
