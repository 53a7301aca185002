// Package module wires the prompt engineering catalog into the API
package module

import (
	"genailab/internal/core/prompt"
	modkit "genailab/internal/modkit"
	"genailab/internal/modkit/httpkit"
	"genailab/internal/services/api/prompts/domain"
	prompthttp "genailab/internal/services/api/prompts/http"
	promptsvc "genailab/internal/services/api/prompts/service"
)

// Module serves /prompts
type Module struct {
	modkit.Base
	svc promptsvc.Service
}

// New builds the module over the embedded technique catalog
func New(_ modkit.Deps, opts ...modkit.Option) modkit.Module {
	return &Module{
		Base: modkit.Build("prompts", "/prompts", opts...),
		svc:  promptsvc.New(prompt.Default()),
	}
}

// MountRoutes mounts /prompts
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) { prompthttp.Register(rr, m.svc) })
}

// Ports exposes the service to other modules
func (m *Module) Ports() any { return domain.ServicePort(m.svc) }
