// Package http provides http transport for prompt engineering helpers
package http

import (
	stdhttp "net/http"

	"genailab/internal/modkit/httpkit"
	str "genailab/internal/platform/strings"
	"genailab/internal/services/api/prompts/domain"
	svc "genailab/internal/services/api/prompts/service"
)

// Register mounts prompts endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.AnalyzeInput](r, "/analyze", h.analyze)
	httpkit.Get(r, "/techniques", h.techniques)
	httpkit.Get(r, "/examples", h.examples)
	httpkit.Get(r, "/templates", h.templates)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /prompts/analyze Prompts promptsAnalyze
// @Summary Score a prompt for clarity, specificity, constraints, examples and format
// @Tags Prompts
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeInput true "Prompt"
// @Success 200 {object} domain.AnalysisResult "ok"
// @Router /prompts/analyze [post]
func (h *handlers) analyze(r *stdhttp.Request, in domain.AnalyzeInput) (any, error) {
	return h.svc.Analyze(r.Context(), str.Deref(in.Prompt))
}

// swagger:route GET /prompts/techniques Prompts promptsTechniques
// @Summary List prompting techniques
// @Tags Prompts
// @Produce json
// @Success 200 {object} domain.TechniquesResult "ok"
// @Router /prompts/techniques [get]
func (h *handlers) techniques(r *stdhttp.Request) (any, error) {
	return h.svc.Techniques(r.Context())
}

// swagger:route GET /prompts/examples Prompts promptsExamples
// @Summary List worked examples
// @Tags Prompts
// @Produce json
// @Param technique query string false "Technique name"
// @Param difficulty query string false "beginner, intermediate or advanced"
// @Success 200 {object} phttp.Envelope "items and total"
// @Router /prompts/examples [get]
func (h *handlers) examples(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	out, err := h.svc.Examples(r.Context(), domain.ExamplesQuery{
		Technique:  q.Get("technique"),
		Difficulty: q.Get("difficulty"),
	})
	if err != nil {
		return nil, err
	}
	return httpkit.List(out), nil
}

// swagger:route GET /prompts/templates Prompts promptsTemplates
// @Summary Look up prompt templates
// @Description Without parameters every template is returned; with useCase or technique one template is resolved
// @Tags Prompts
// @Produce json
// @Param useCase query string false "Use case"
// @Param technique query string false "Technique name"
// @Success 200 {object} domain.TemplateResult "ok"
// @Router /prompts/templates [get]
func (h *handlers) templates(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	useCase, technique := q.Get("useCase"), q.Get("technique")
	if useCase == "" && technique == "" {
		return h.svc.Templates(r.Context())
	}
	return h.svc.Template(r.Context(), useCase, technique)
}
