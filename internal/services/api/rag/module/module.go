// Package module wires document retrieval into the API
package module

import (
	"genailab/internal/core/rag"
	modkit "genailab/internal/modkit"
	"genailab/internal/modkit/httpkit"
	"genailab/internal/services/api/rag/domain"
	raghttp "genailab/internal/services/api/rag/http"
	ragsvc "genailab/internal/services/api/rag/service"
)

// Module serves /rag
type Module struct {
	modkit.Base
	svc ragsvc.Service
}

// New builds the engine. RAG_SEED=false starts it empty instead of with the sample corpus
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	engine := rag.NewEngine()
	if deps.Cfg.MayBool("RAG_SEED", true) {
		engine.SetDocuments(rag.SampleDocuments)
		log := deps.Logger("rag")
		log.Debug().Int("documents", engine.Len()).Msg("sample corpus installed")
	}

	return &Module{
		Base: modkit.Build("rag", "/rag", opts...),
		svc:  ragsvc.New(engine, deps.Metrics),
	}
}

// MountRoutes mounts /rag
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) { raghttp.Register(rr, m.svc) })
}

// Ports exposes the service to other modules
func (m *Module) Ports() any { return domain.ServicePort(m.svc) }
