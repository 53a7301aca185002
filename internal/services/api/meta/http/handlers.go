// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"genailab/internal/core/version"
	"genailab/internal/modkit/httpkit"
)

// Check probes one in-process dependency; a nil error means ready
type Check struct {
	Name string
	Fn   func(stdctx.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Components  func() []string
	Checks      []Check
	Data        func() DataResponse
}

// now is a seam for tests
var now = time.Now

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	// mount routes
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/data", h.data)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	Status     string            `json:"status"     example:"healthy"`
	Service    string            `json:"service"    example:"genailab-api"`
	Version    string            `json:"version"    example:"1.0.0"`
	Components map[string]string `json:"services"`
	Started    string            `json:"started"    example:"2026-09-03T13:00:00Z"`
	Now        string            `json:"now"        example:"2026-09-03T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"lexicon"`
	Status string `json:"status" example:"ok"` // ok fail
	Error  string `json:"error,omitempty" example:"lexicon: no training data"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail skipped
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-09-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"genailab-api"`
	Started string `json:"started" example:"2026-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// DataResponse reports the embedded reference data the analyzers run on
type DataResponse struct {
	LexiconVersion int               `json:"lexicon_version" example:"1"`
	BiasCategories []string          `json:"bias_categories"`
	Techniques     int               `json:"techniques"      example:"6"`
	Build          version.BuildInfo `json:"build"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse "healthy"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	comps := map[string]string{}
	if h.deps.Components != nil {
		for _, c := range h.deps.Components() {
			comps[c] = "active"
		}
	}
	return HealthResponse{
		Status:     "healthy",
		Service:    h.deps.ServiceName,
		Version:    version.APIVersion,
		Components: comps,
		Started:    h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:        now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe over the embedded data sets
// @Tags Meta
// @Produce json
// @Success 200 type ReadyResponse ok
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	overall := "ok"
	if len(h.deps.Checks) == 0 {
		overall = "skipped"
	}
	checks := make([]ReadyCheck, 0, len(h.deps.Checks))
	for _, c := range h.deps.Checks {
		rc := ReadyCheck{Name: c.Name, Status: "ok"}
		if err := c.Fn(ctx); err != nil {
			rc.Status, rc.Error = "fail", err.Error()
			overall = "fail"
		}
		checks = append(checks, rc)
	}

	return ReadyResponse{
		Status: overall,
		Checks: checks,
		Now:    now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 type ServiceResponse ok
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := now().Sub(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// swagger:route GET /meta/data Meta metaData
// @Summary Embedded lexicon and catalog versions
// @Tags Meta
// @Produce json
// @Success 200 type DataResponse ok
// @Router /meta/data [get]
func (h *handlers) data(_ *http.Request) (any, error) {
	out := DataResponse{Build: version.Info()}
	if h.deps.Data != nil {
		out = h.deps.Data()
		out.Build = version.Info()
	}
	return out, nil
}
