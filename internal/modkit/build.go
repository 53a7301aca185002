package modkit

import (
	"net/http"
	"slices"

	"genailab/internal/modkit/httpkit"
	str "genailab/internal/platform/strings"
)

// Base is embedded by every module. It provides Name, Prefix and Middlewares
// and mounts routes; modules add Ports and MountRoutes
type Base struct {
	name     string
	prefix   string
	mw       []func(http.Handler) http.Handler
	injected any
	extra    func(httpkit.Router)
}

// Build starts from the module's own name and prefix and applies opts on top
func Build(name, prefix string, opts ...Option) Base {
	b := Base{name: name, prefix: prefix}
	for _, o := range opts {
		o(&b)
	}
	b.mw = slices.Clone(b.mw)
	return b
}

// Name panics on an empty name so a misbuilt module fails at startup
func (b Base) Name() string { return str.MustString(b.name, "module name") }

// Prefix is the normalized mount path, e.g. /nlp
func (b Base) Prefix() string { return str.MustPrefix(b.prefix) }

// Middlewares returns a copy of the module middleware
func (b Base) Middlewares() []func(http.Handler) http.Handler { return slices.Clone(b.mw) }

// Injected is the value given to WithPorts, nil when there was none
func (b Base) Injected() any { return b.injected }

// Mount registers routes under Prefix behind the module middleware
func (b Base) Mount(r httpkit.Router, routes func(httpkit.Router)) {
	r.Route(b.Prefix(), func(sub httpkit.Router) {
		if len(b.mw) > 0 {
			sub.Use(b.mw...)
		}
		routes(sub)
		if b.extra != nil {
			b.extra(sub)
		}
	})
}
