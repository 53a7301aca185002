// Package service contains API usage analytics
package service

import (
	"context"
	"net/http"
	"time"

	"genailab/internal/core/version"
	"genailab/internal/platform/logger"
	"genailab/internal/platform/metrics"
	phttp "genailab/internal/platform/net/http"
	"genailab/internal/platform/net/middleware"
	"genailab/internal/services/api/analytics/domain"
	projdomain "genailab/internal/services/api/projects/domain"
)

// UnmatchedRoute labels requests no route handled
const UnmatchedRoute = "unmatched"

// Service defines the analytics service contract
type Service interface {
	domain.ServicePort
}

// now is a seam for tests
var now = func() time.Time { return time.Now().UTC() }

// Svc implements the analytics service
type Svc struct {
	tracker *Tracker
	src     domain.Sources
	metrics *metrics.Metrics
	started time.Time
}

// New constructs an analytics service. m may be nil
func New(src domain.Sources, m *metrics.Metrics) *Svc {
	return &Svc{tracker: NewTracker(), src: src, metrics: m, started: now()}
}

// Middleware counts every request under its route template once routing has finished
func (s *Svc) Middleware() func(http.Handler) http.Handler {
	return middleware.Observe(s.observe)
}

func (s *Svc) observe(r *http.Request, status int, elapsed time.Duration) {
	route := phttp.RoutePattern(r)
	if route == "" {
		route = UnmatchedRoute
	}
	s.tracker.Record(r.Method + " " + route)
	s.metrics.ObserveRequest(route, r.Method, status, elapsed)
}

// Report aggregates request counters with the registry, collection and catalog sizes
func (s *Svc) Report(ctx context.Context) (domain.Report, error) {
	at := now()
	reqs, total := s.tracker.Snapshot()
	out := domain.Report{
		Requests:      reqs,
		TotalRequests: total,
		Projects:      projdomain.Summary{ProjectsByType: map[string]int{}},
		APIVersion:    version.APIVersion,
		UptimeSeconds: at.Sub(s.started).Seconds(),
		Timestamp:     at,
	}
	if s.src.Projects != nil {
		sum, err := s.src.Projects.Summary(ctx)
		if err != nil {
			logger.C(ctx).Warn().Err(err).Msg("project summary unavailable")
		} else {
			out.Projects = sum
		}
	}
	if s.src.Documents != nil {
		out.TotalDocuments = s.src.Documents.TotalDocuments()
	}
	if s.src.Catalog != nil {
		out.AvailableTechniques = s.src.Catalog.TechniqueCount()
	}
	return out, nil
}
