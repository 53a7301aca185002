// Package module wires text analysis into the API
package module

import (
	"genailab/internal/core/sentiment"
	"genailab/internal/core/textgen"
	modkit "genailab/internal/modkit"
	"genailab/internal/modkit/httpkit"
	"genailab/internal/services/api/nlp/domain"
	nlphttp "genailab/internal/services/api/nlp/http"
	nlpsvc "genailab/internal/services/api/nlp/service"
)

// Module serves /nlp
type Module struct {
	modkit.Base
	svc nlpsvc.Service
}

// New trains the classifier once from the lexicon. TEXTGEN_SEED pins the
// generator for reproducible output, 0 seeds from the clock
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	lx := deps.Lex()
	clf, err := sentiment.Train(lx.Training())
	if err != nil {
		panic("nlp: " + err.Error())
	}

	var gen *textgen.Generator
	if seed := deps.Cfg.MayUint64("TEXTGEN_SEED", 0); seed != 0 {
		gen = textgen.NewSeeded(lx.Connectives(), seed)
	} else {
		gen = textgen.New(lx.Connectives(), nil)
	}

	return &Module{
		Base: modkit.Build("nlp", "/nlp", opts...),
		svc:  nlpsvc.New(clf, gen),
	}
}

// MountRoutes mounts /nlp
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) { nlphttp.Register(rr, m.svc) })
}

// Ports exposes the service to other modules
func (m *Module) Ports() any { return domain.ServicePort(m.svc) }
