// Package module is the contract API modules satisfy plus the lookups used to
// wire one module's ports into another. It sits apart from modkit so domain
// packages can depend on it without pulling in the builders
package module

import phttp "genailab/internal/platform/net/http"

// Module is a feature area of the API
type Module interface {
	Name() string
	MountRoutes(r phttp.Router)

	// Ports is the value other modules may consume, nil when there is none
	Ports() any
}
