// Package module wires API usage analytics into the API
package module

import (
	modkit "genailab/internal/modkit"
	"genailab/internal/modkit/httpkit"
	"genailab/internal/services/api/analytics/domain"
	analyticshttp "genailab/internal/services/api/analytics/http"
	analyticssvc "genailab/internal/services/api/analytics/service"
)

// Module serves /analytics
type Module struct {
	modkit.Base
	svc analyticssvc.Service
}

// New builds the module. Pass modkit.WithPorts(domain.Sources{...}) to
// aggregate other modules into the report
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build("analytics", "/analytics", opts...)
	src, _ := b.Injected().(domain.Sources)

	return &Module{Base: b, svc: analyticssvc.New(src, deps.Metrics)}
}

// MountRoutes mounts /analytics
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) { analyticshttp.Register(rr, m.svc) })
}

// Ports exposes the service, including the request tracker middleware
func (m *Module) Ports() any { return domain.ServicePort(m.svc) }
