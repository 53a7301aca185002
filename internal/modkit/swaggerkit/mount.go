package swaggerkit

import (
	"net/http"
	"strings"

	phttp "genailab/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DefaultPath is where the docs live unless CORE_API_DOCS_PATH moves them
const DefaultPath = "/api/docs"

// Mount serves the Swagger UI under base, with doc.json beside it.
// Nothing is mounted when enabled is false
func Mount(r phttp.Router, base string, enabled bool) {
	if !enabled {
		return
	}
	base = "/" + strings.Trim(base, "/")
	if base == "/" {
		base = DefaultPath
	}
	spec := base + "/doc.json"

	r.Get(base, func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, base+"/", http.StatusPermanentRedirect)
	})
	r.Get(spec, serveDocJSON())
	r.Handle(base+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL(spec),
	))
}
