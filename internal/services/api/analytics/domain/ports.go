package domain

import (
	"context"
	"net/http"

	projdomain "genailab/internal/services/api/projects/domain"
	promptsdomain "genailab/internal/services/api/prompts/domain"
	ragdomain "genailab/internal/services/api/rag/domain"
)

// ServicePort is the interface implemented by the analytics service
type ServicePort interface {
	Report(ctx context.Context) (Report, error)
	TrackerPort
}

// TrackerPort exposes request counting to the API root
type TrackerPort interface {
	Middleware() func(http.Handler) http.Handler
}

// Sources are the ports of the modules a report aggregates. Nil sources report zeros
type Sources struct {
	Projects  projdomain.SummaryPort
	Documents ragdomain.CounterPort
	Catalog   promptsdomain.CatalogPort
}
