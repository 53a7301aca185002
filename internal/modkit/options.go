package modkit

import (
	"net/http"

	"genailab/internal/modkit/httpkit"
)

// Option adjusts a module's Base before it is built
type Option func(*Base)

// WithName overrides the module's own name
func WithName(name string) Option {
	return func(b *Base) { b.name = name }
}

// WithPrefix overrides the module's own mount prefix
func WithPrefix(prefix string) Option {
	return func(b *Base) { b.prefix = prefix }
}

// WithMiddlewares runs mw, in order, on this module's routes only
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Base) { b.mw = append(b.mw, mw...) }
}

// WithPorts hands another module's ports to this one; the receiving
// module decides the concrete type it expects
func WithPorts[T any](p T) Option {
	return func(b *Base) { b.injected = p }
}

// WithRoutes adds routes next to the module's own, under the same prefix
func WithRoutes(fn func(httpkit.Router)) Option {
	return func(b *Base) { b.extra = fn }
}
