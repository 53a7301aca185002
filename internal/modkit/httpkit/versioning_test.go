package httpkit_test

import (
	"net/http"
	"testing"

	"genailab/internal/modkit/httpkit"
)

func TestMountAPI_ScopesMiddleware(t *testing.T) {
	tag := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Scoped", "yes")
			next.ServeHTTP(w, r)
		})
	}
	h := newRouter(t, func(r httpkit.Router) {
		httpkit.Get(r, "/outside", func(*http.Request) (any, error) { return "out", nil })
		httpkit.MountAPI(r, "/v2/", []func(http.Handler) http.Handler{tag}, func(api httpkit.Router) {
			httpkit.Get(api, "/inside", func(*http.Request) (any, error) { return "in", nil })
		})
	})

	rr := do(h, http.MethodGet, "/api/v2/inside", "")
	if rr.Code != http.StatusOK || rr.Header().Get("X-Scoped") != "yes" {
		t.Fatalf("inside: status %d, scoped %q", rr.Code, rr.Header().Get("X-Scoped"))
	}
	rr = do(h, http.MethodGet, "/outside", "")
	if rr.Code != http.StatusOK || rr.Header().Get("X-Scoped") != "" {
		t.Fatalf("outside: status %d, scoped %q", rr.Code, rr.Header().Get("X-Scoped"))
	}
}

func TestMountAPIV1(t *testing.T) {
	h := newRouter(t, func(r httpkit.Router) {
		httpkit.MountAPIV1(r, nil, func(api httpkit.Router) {
			httpkit.Get(api, "/x", func(*http.Request) (any, error) { return 1, nil })
		})
	})
	if rr := do(h, http.MethodGet, "/api/v1/x", ""); rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
}
