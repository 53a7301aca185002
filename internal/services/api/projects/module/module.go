// Package module wires project tracking into the API
package module

import (
	modkit "genailab/internal/modkit"
	"genailab/internal/modkit/httpkit"
	"genailab/internal/services/api/projects/domain"
	projhttp "genailab/internal/services/api/projects/http"
	"genailab/internal/services/api/projects/repo"
	projsvc "genailab/internal/services/api/projects/service"
)

// Module serves /projects
type Module struct {
	modkit.Base
	svc projsvc.Service
}

// New builds the module over an empty in-memory store
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	return &Module{
		Base: modkit.Build("projects", "/projects", opts...),
		svc:  projsvc.New(repo.NewInMemory(), deps.Metrics),
	}
}

// MountRoutes mounts /projects
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) { projhttp.Register(rr, m.svc) })
}

// Ports exposes the service, which also satisfies domain.SummaryPort
func (m *Module) Ports() any { return domain.ServicePort(m.svc) }
