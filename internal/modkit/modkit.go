// Package modkit assembles API modules: the deps they share, their options
// and the embeddable Base that mounts their routes
package modkit

import "genailab/internal/modkit/module"

// Module is what api.Mount composes
type Module = module.Module
