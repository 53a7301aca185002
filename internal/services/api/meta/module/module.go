// Package module wires the meta endpoints: health, readiness, version and data
package module

import (
	"context"
	"errors"
	"slices"
	"time"

	"genailab/internal/core/lexicon"
	"genailab/internal/core/prompt"
	"genailab/internal/core/version"
	modkit "genailab/internal/modkit"
	"genailab/internal/modkit/httpkit"
	modreg "genailab/internal/modkit/module"

	metahttp "genailab/internal/services/api/meta/http"
)

// Module serves /meta
type Module struct {
	modkit.Base
	deps      metahttp.Deps
	startedAt time.Time
}

// New builds the meta module. Health lists every other module in the registry
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	m := &Module{Base: modkit.Build("meta", "/meta", opts...), startedAt: time.Now()}

	lx := deps.Lex()
	m.deps = metahttp.Deps{
		ServiceName: version.Info().Service,
		StartedAt:   m.startedAt,
		Components: func() []string {
			return slices.DeleteFunc(modreg.Names(), func(n string) bool { return n == m.Name() })
		},
		Checks: []metahttp.Check{
			{Name: "lexicon", Fn: func(context.Context) error { return checkLexicon(lx) }},
			{Name: "catalog", Fn: func(context.Context) error { return checkCatalog() }},
		},
		Data: func() metahttp.DataResponse {
			return metahttp.DataResponse{
				LexiconVersion: lx.Version(),
				BiasCategories: lx.Bias().Names(),
				Techniques:     len(prompt.Default().Techniques()),
			}
		},
	}
	return m
}

func checkLexicon(lx *lexicon.Lexicon) error {
	if lx.Training().Empty() {
		return errors.New("lexicon: no training data")
	}
	if len(lx.Bias()) == 0 {
		return errors.New("lexicon: empty bias table")
	}
	return nil
}

// the embedded catalog panics on load if it is malformed
func checkCatalog() (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = errors.New("catalog: embedded catalog failed to load")
		}
	}()
	if len(prompt.Default().Techniques()) == 0 {
		return errors.New("catalog: no techniques")
	}
	return nil
}

// MountRoutes mounts /meta
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Ports is nil; nothing consumes meta
func (m *Module) Ports() any { return nil }
