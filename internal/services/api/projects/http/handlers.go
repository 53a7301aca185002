// Package http provides http transport for the project registry
package http

import (
	stdhttp "net/http"

	"genailab/internal/modkit/httpkit"
	"genailab/internal/platform/logger"
	phttp "genailab/internal/platform/net/http"
	"genailab/internal/services/api/projects/domain"
	svc "genailab/internal/services/api/projects/service"
)

// Register mounts project endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.CreateInput](r, "/", h.create)
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/summary", h.summary)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PutJSON[domain.MetricsPatch](r, "/{id}/metrics", h.updateMetrics)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /projects Projects projectsCreate
// @Summary Register a project
// @Tags Projects
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Project"
// @Success 201 {object} domain.Project "created"
// @Failure 400 {object} phttp.Envelope "validation"
// @Router /projects [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	p, err := h.svc.Create(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(p), nil
}

// swagger:route GET /projects Projects projectsList
// @Summary List projects in creation order
// @Tags Projects
// @Produce json
// @Success 200 {object} phttp.Envelope "items and total"
// @Router /projects [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	all, err := h.svc.List(r.Context())
	if err != nil {
		return nil, err
	}
	return httpkit.List(all), nil
}

// swagger:route GET /projects/summary Projects projectsSummary
// @Summary Aggregate the registry
// @Tags Projects
// @Produce json
// @Success 200 {object} domain.Summary "ok"
// @Router /projects/summary [get]
func (h *handlers) summary(r *stdhttp.Request) (any, error) {
	return h.svc.Summary(r.Context())
}

// swagger:route GET /projects/{id} Projects projectsGet
// @Summary Fetch one project
// @Tags Projects
// @Produce json
// @Param id path string true "Project id"
// @Success 200 {object} domain.Project "ok"
// @Failure 404 {object} phttp.Envelope "unknown id"
// @Router /projects/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	id := phttp.URLParam(r, "id")
	return h.svc.Get(logger.WithProject(r.Context(), id), id)
}

// swagger:route PUT /projects/{id}/metrics Projects projectsUpdateMetrics
// @Summary Merge reported metrics into a project
// @Description Only the fields present are overwritten; values are stored without range checks
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project id"
// @Param payload body domain.MetricsPatch true "Metrics"
// @Success 200 {object} domain.UpdateResult "ok"
// @Failure 404 {object} phttp.Envelope "unknown id"
// @Router /projects/{id}/metrics [put]
func (h *handlers) updateMetrics(r *stdhttp.Request, in domain.MetricsPatch) (any, error) {
	id := phttp.URLParam(r, "id")
	return h.svc.UpdateMetrics(logger.WithProject(r.Context(), id), id, in)
}
