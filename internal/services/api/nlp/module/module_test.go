package module

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	modkit "genailab/internal/modkit"
	"genailab/internal/platform/config"
	phttp "genailab/internal/platform/net/http"
	"genailab/internal/services/api/nlp/domain"

	"github.com/go-chi/chi/v5"
)

type envelope[T any] struct {
	StatusCode int    `json:"status_code"`
	Error      string `json:"error"`
	Data       T      `json:"data"`
}

func newRouter(t *testing.T) stdhttp.Handler {
	t.Helper()
	t.Setenv("NLPTEST_TEXTGEN_SEED", "7")
	m := New(modkit.Deps{Cfg: config.New().Prefix("NLPTEST_")})
	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)
	return r.Mux()
}

func post(t *testing.T, h stdhttp.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodPost, path, strings.NewReader(body)))
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

func TestSentimentEndpoint(t *testing.T) {
	h := newRouter(t)

	rec := post(t, h, "/nlp/sentiment", `{"text":"This AI system is terrible and unreliable"}`)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	env := decode[domain.SentimentResult](t, rec)
	if env.Data.Sentiment != "negative" || env.Data.Confidence != 1 {
		t.Fatalf("unexpected result %+v", env.Data)
	}
}

func TestSentimentEndpoint_EmptyTextIsValid(t *testing.T) {
	rec := post(t, newRouter(t), "/nlp/sentiment", `{"text":""}`)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	env := decode[domain.SentimentResult](t, rec)
	if env.Data.Sentiment != "positive" || env.Data.Confidence != 0 {
		t.Fatalf("unexpected result %+v", env.Data)
	}
}

func TestSentimentEndpoint_Validation(t *testing.T) {
	h := newRouter(t)
	tests := []struct {
		name string
		body string
		want int
	}{
		{"missing text", `{}`, stdhttp.StatusBadRequest},
		{"non string text", `{"text":12}`, stdhttp.StatusBadRequest},
		{"malformed", `{"text":`, stdhttp.StatusBadRequest},
		{"empty body", ``, stdhttp.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(t, h, "/nlp/sentiment", tc.body)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d body=%s", rec.Code, tc.want, rec.Body.String())
			}
			if env := decode[any](t, rec); env.Error == "" {
				t.Fatalf("expected descriptive error, got %s", rec.Body.String())
			}
		})
	}
}

func TestKeywordsEndpoint(t *testing.T) {
	rec := post(t, newRouter(t), "/nlp/keywords", `{"text":"How is AI improving healthcare? Healthcare needs better data."}`)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	env := decode[domain.KeywordResult](t, rec)
	if len(env.Data.Keywords) == 0 || env.Data.Keywords[0].Word != "healthcare" || env.Data.Keywords[0].Frequency != 2 {
		t.Fatalf("unexpected keywords %+v", env.Data.Keywords)
	}
}

func TestGenerateEndpoint(t *testing.T) {
	h := newRouter(t)

	rec := post(t, h, "/nlp/generate", `{"prompt":"AI will transform","maxLength":30}`)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	env := decode[domain.GenerationResult](t, rec)
	if env.Data.Length < 30 || !strings.HasPrefix(env.Data.GeneratedText, "AI will transform ") {
		t.Fatalf("unexpected generation %+v", env.Data)
	}

	rec = post(t, h, "/nlp/generate", `{"prompt":"AI will","maxLength":5}`)
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("maxLength below 10 should be rejected, got %d", rec.Code)
	}
}

func TestModuleSurface(t *testing.T) {
	m := New(modkit.Deps{}).(*Module)
	if m.Name() != "nlp" || m.Prefix() != "/nlp" {
		t.Fatalf("name/prefix = %q %q", m.Name(), m.Prefix())
	}
	if _, ok := m.Ports().(domain.ServicePort); !ok {
		t.Fatalf("ports should expose domain.ServicePort")
	}
}
