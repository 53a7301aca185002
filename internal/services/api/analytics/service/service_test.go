package service

import (
	"context"
	"errors"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"genailab/internal/platform/metrics"
	phttp "genailab/internal/platform/net/http"
	"genailab/internal/platform/testkit"
	"genailab/internal/services/api/analytics/domain"
	projdomain "genailab/internal/services/api/projects/domain"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

type fakeProjects struct {
	sum projdomain.Summary
	err error
}

func (f fakeProjects) Summary(context.Context) (projdomain.Summary, error) { return f.sum, f.err }

type fakeDocs int

func (f fakeDocs) TotalDocuments() int { return int(f) }

type fakeCatalog int

func (f fakeCatalog) TechniqueCount() int { return int(f) }

func TestReport_Aggregates(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	testkit.Swap(t, &now, func() time.Time { return start })

	svc := New(domain.Sources{
		Projects:  fakeProjects{sum: projdomain.Summary{TotalProjects: 2, ProjectsByType: map[string]int{"CNN": 2}}},
		Documents: fakeDocs(5),
		Catalog:   fakeCatalog(6),
	}, nil)

	testkit.Swap(t, &now, func() time.Time { return start.Add(90 * time.Second) })
	rep, err := svc.Report(context.Background())
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if rep.Projects.TotalProjects != 2 || rep.TotalDocuments != 5 || rep.AvailableTechniques != 6 {
		t.Fatalf("unexpected report %+v", rep)
	}
	if rep.APIVersion != "1.0.0" || rep.UptimeSeconds != 90 || rep.TotalRequests != 0 {
		t.Fatalf("unexpected report %+v", rep)
	}
}

func TestReport_MissingAndFailingSources(t *testing.T) {
	rep, _ := New(domain.Sources{}, nil).Report(context.Background())
	if rep.Projects.ProjectsByType == nil || rep.TotalDocuments != 0 || rep.Requests == nil {
		t.Fatalf("unexpected report %+v", rep)
	}

	rep, err := New(domain.Sources{Projects: fakeProjects{err: errors.New("down")}}, nil).Report(context.Background())
	if err != nil || rep.Projects.TotalProjects != 0 {
		t.Fatalf("failing source should report zeros, got %+v %v", rep, err)
	}
}

func TestMiddleware_CountsRouteTemplates(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	svc := New(domain.Sources{}, m)

	mux := chi.NewRouter()
	mux.Use(svc.Middleware())
	mux.Get("/projects/{id}", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(stdhttp.StatusNotFound) })
	r := phttp.AdaptChi(mux)

	for _, p := range []string{"/projects/a", "/projects/b", "/nowhere"} {
		r.Mux().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(stdhttp.MethodGet, p, nil))
	}

	rep, _ := svc.Report(context.Background())
	if rep.Requests["GET /projects/{id}"] != 2 || rep.Requests["GET "+UnmatchedRoute] != 1 || rep.TotalRequests != 3 {
		t.Fatalf("unexpected counters %+v", rep.Requests)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	testkit.MustContain(t, string(body), `genailab_http_requests_total{method="GET",route="/projects/{id}",status="404"} 2`)
}
