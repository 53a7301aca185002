package module

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"genailab/internal/core/rag"
	modkit "genailab/internal/modkit"
	"genailab/internal/platform/config"
	phttp "genailab/internal/platform/net/http"
	"genailab/internal/services/api/rag/domain"

	"github.com/go-chi/chi/v5"
)

type envelope[T any] struct {
	StatusCode int    `json:"status_code"`
	Error      string `json:"error"`
	Data       T      `json:"data"`
}

func mount(t *testing.T, m modkit.Module) stdhttp.Handler {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)
	return r.Mux()
}

func do(t *testing.T, h stdhttp.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	var req *stdhttp.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var env envelope[T]
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return env
}

func TestSeededSearch(t *testing.T) {
	h := mount(t, New(modkit.Deps{Cfg: config.New().Prefix("RAGTEST_SEEDED_")}))

	rec := do(t, h, stdhttp.MethodPost, "/rag/search", `{"query":"AI in healthcare","topK":2}`)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	env := decode[domain.SearchResult](t, rec)
	if len(env.Data.Results) != 2 || env.Data.TotalDocuments != len(rag.SampleDocuments) {
		t.Fatalf("unexpected search %+v", env.Data)
	}
	if env.Data.Results[0].Document != rag.SampleDocuments[0] || env.Data.Results[1].Rank != 2 {
		t.Fatalf("unexpected ranking %+v", env.Data.Results)
	}
}

func TestUnseededReplaceAndList(t *testing.T) {
	t.Setenv("RAGTEST_EMPTY_RAG_SEED", "false")
	h := mount(t, New(modkit.Deps{Cfg: config.New().Prefix("RAGTEST_EMPTY_")}))

	env := decode[domain.Collection](t, do(t, h, stdhttp.MethodGet, "/rag/documents", ""))
	if env.Data.TotalDocuments != 0 {
		t.Fatalf("expected empty collection, got %+v", env.Data)
	}

	rec := do(t, h, stdhttp.MethodPost, "/rag/documents", `{"documents":["go is fun","rust is fun"]}`)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if got := decode[domain.SetDocumentsResult](t, rec); got.Data.TotalDocuments != 2 {
		t.Fatalf("unexpected ack %+v", got.Data)
	}

	env = decode[domain.Collection](t, do(t, h, stdhttp.MethodGet, "/rag/documents", ""))
	if env.Data.TotalDocuments != 2 || env.Data.Documents[0] != "go is fun" {
		t.Fatalf("unexpected collection %+v", env.Data)
	}
}

func TestValidation(t *testing.T) {
	h := mount(t, New(modkit.Deps{}))
	tests := []struct {
		name, path, body string
	}{
		{"search without query", "/rag/search", `{"topK":3}`},
		{"topK too large", "/rag/search", `{"query":"ai","topK":11}`},
		{"topK negative", "/rag/search", `{"query":"ai","topK":-1}`},
		{"documents missing", "/rag/documents", `{}`},
		{"documents not strings", "/rag/documents", `{"documents":[1,2]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := do(t, h, stdhttp.MethodPost, tc.path, tc.body)
			if rec.Code != stdhttp.StatusBadRequest {
				t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
			}
		})
	}
}
