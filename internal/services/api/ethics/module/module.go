// Package module wires bias detection into the API
package module

import (
	"genailab/internal/core/bias"
	modkit "genailab/internal/modkit"
	"genailab/internal/modkit/httpkit"
	"genailab/internal/services/api/ethics/domain"
	ethicshttp "genailab/internal/services/api/ethics/http"
	ethicssvc "genailab/internal/services/api/ethics/service"
)

// Module serves /ethics
type Module struct {
	modkit.Base
	svc ethicssvc.Service
}

// New compiles the bias table once. BIAS_MATCH picks substring (default) or token matching
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	raw := deps.Cfg.MayEnum("BIAS_MATCH", string(bias.MatchSubstring), string(bias.MatchSubstring), string(bias.MatchToken))
	mode, err := bias.ParseMatchMode(raw)
	if err != nil {
		panic("ethics: " + err.Error())
	}
	det := bias.New(deps.Lex().Bias(), bias.Options{Mode: mode})

	log := deps.Logger("ethics")
	log.Debug().Str("mode", string(det.Mode())).Strs("categories", det.Categories()).Msg("bias detector compiled")

	return &Module{
		Base: modkit.Build("ethics", "/ethics", opts...),
		svc:  ethicssvc.New(det, deps.Metrics),
	}
}

// MountRoutes mounts /ethics
func (m *Module) MountRoutes(r httpkit.Router) {
	m.Mount(r, func(rr httpkit.Router) { ethicshttp.Register(rr, m.svc) })
}

// Ports exposes the service to other modules
func (m *Module) Ports() any { return domain.ServicePort(m.svc) }
