// Package http provides http transport for API usage analytics
package http

import (
	stdhttp "net/http"

	"genailab/internal/modkit/httpkit"
	svc "genailab/internal/services/api/analytics/service"
)

// Register mounts analytics endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.report)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /analytics Analytics analyticsReport
// @Summary Request counters and registry totals
// @Tags Analytics
// @Produce json
// @Success 200 {object} domain.Report "ok"
// @Router /analytics [get]
func (h *handlers) report(r *stdhttp.Request) (any, error) {
	return h.svc.Report(r.Context())
}
