// Package http provides http transport for bias screening
package http

import (
	stdhttp "net/http"

	"genailab/internal/modkit/httpkit"
	str "genailab/internal/platform/strings"
	"genailab/internal/services/api/ethics/domain"
	svc "genailab/internal/services/api/ethics/service"
)

// Register mounts ethics endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.TextInput](r, "/bias", h.bias)
	httpkit.PostJSON[domain.MitigationInput](r, "/mitigation", h.mitigation)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /ethics/bias Ethics ethicsBias
// @Summary Scan text for biased language
// @Description Matching is substring based unless CORE_API_BIAS_MATCH=token
// @Tags Ethics
// @Accept json
// @Produce json
// @Param payload body domain.TextInput true "Text"
// @Success 200 {object} domain.BiasResult "ok"
// @Router /ethics/bias [post]
func (h *handlers) bias(r *stdhttp.Request, in domain.TextInput) (any, error) {
	return h.svc.Bias(r.Context(), str.Deref(in.Text))
}

// swagger:route POST /ethics/mitigation Ethics ethicsMitigation
// @Summary Suggest mitigations for a bias scan
// @Tags Ethics
// @Accept json
// @Produce json
// @Param payload body domain.MitigationInput true "Previous scan"
// @Success 200 {object} domain.MitigationResult "ok"
// @Router /ethics/mitigation [post]
func (h *handlers) mitigation(r *stdhttp.Request, in domain.MitigationInput) (any, error) {
	return h.svc.Mitigation(r.Context(), in.BiasResult.Result)
}
