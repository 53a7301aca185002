// @title         genailab API
// @version       1.0.0
// @description   Text analysis, retrieval, bias checks, prompt tooling and project tracking

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"genailab/internal/core/lexicon"
	"genailab/internal/platform/config"
	"genailab/internal/platform/logger"
	"genailab/internal/platform/metrics"
	phttp "genailab/internal/platform/net/http"

	"genailab/internal/services/api"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	// reference data is embedded, a broken build should never start serving
	lx, err := lexicon.Load()
	if err != nil {
		l.Panic().Err(err).Msg("lexicon.Load failed")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			Metrics:        m,
			Lexicon:        lx,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			EnableMetrics:  apiCfg.MayBool("METRICS", true),
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		l.Info().Msg("shutdown requested")
		return nil
	})

	if err := g.Wait(); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
