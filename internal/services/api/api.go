// Package api provides the HTTP API for the application
package api

import (
	"genailab/internal/core/lexicon"
	"genailab/internal/platform/config"
	"genailab/internal/platform/logger"
	"genailab/internal/platform/metrics"
	phttp "genailab/internal/platform/net/http"
	"genailab/internal/platform/net/middleware"

	"genailab/internal/modkit"
	"genailab/internal/modkit/httpkit"
	"genailab/internal/modkit/module"
	"genailab/internal/modkit/swaggerkit"

	analyticsdomain "genailab/internal/services/api/analytics/domain"
	analyticsmod "genailab/internal/services/api/analytics/module"
	ethicsmod "genailab/internal/services/api/ethics/module"
	metamod "genailab/internal/services/api/meta/module"
	nlpmod "genailab/internal/services/api/nlp/module"
	projdomain "genailab/internal/services/api/projects/domain"
	projectsmod "genailab/internal/services/api/projects/module"
	promptsdomain "genailab/internal/services/api/prompts/domain"
	promptsmod "genailab/internal/services/api/prompts/module"
	ragdomain "genailab/internal/services/api/rag/domain"
	ragmod "genailab/internal/services/api/rag/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Metrics        *metrics.Metrics
	Lexicon        *lexicon.Lexicon
	EnableSwagger  bool
	EnableProfiler bool
	EnableMetrics  bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Log:     opt.Logger,
		Cfg:     opt.Config,
		Metrics: opt.Metrics,
		Lexicon: opt.Lexicon,
	}

	// liveness answers before any routing
	r.Use(middleware.Heartbeat("/health"))

	// feature modules first so their ports can feed the aggregating ones
	nlp := nlpmod.New(deps)
	rag := ragmod.New(deps)
	ethics := ethicsmod.New(deps)
	projects := projectsmod.New(deps)
	prompts := promptsmod.New(deps)

	analytics := analyticsmod.New(deps, modkit.WithPorts(analyticsdomain.Sources{
		Projects:  module.MustPortsOf[projdomain.SummaryPort](projects),
		Documents: module.MustPortsOf[ragdomain.CounterPort](rag),
		Catalog:   module.MustPortsOf[promptsdomain.CatalogPort](prompts),
	}))
	tracker := module.MustPortsOf[analyticsdomain.TrackerPort](analytics)

	mods := []module.Module{metamod.New(deps), nlp, rag, ethics, projects, prompts, analytics}
	names := make([]string, 0, len(mods))

	// versioned API with a common middleware stack plus request accounting
	stack := append(httpkit.CommonStack(httpkit.StackFromConfig(opt.Config)), tracker.Middleware())
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		// Swagger + profiler + metrics
		swaggerkit.Mount(r, opt.Config.MayString("DOCS_PATH", swaggerkit.DefaultPath), opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)
		if opt.EnableMetrics {
			r.Handle("/metrics", opt.Metrics.Handler())
		}

		for _, m := range mods {
			// meta reports health from the registry
			module.Register(m.Name(), m.Ports())
			names = append(names, m.Name())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})

	log := deps.Logger("api")
	log.Debug().Strs("modules", names).Msg("api mounted")
}
