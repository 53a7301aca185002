// Package http provides http transport for text analysis
package http

import (
	stdhttp "net/http"

	"genailab/internal/modkit/httpkit"
	str "genailab/internal/platform/strings"
	"genailab/internal/services/api/nlp/domain"
	svc "genailab/internal/services/api/nlp/service"
)

// Register mounts nlp endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.TextInput](r, "/sentiment", h.sentiment)
	httpkit.PostJSON[domain.TextInput](r, "/keywords", h.keywords)
	httpkit.PostJSON[domain.GenerateInput](r, "/generate", h.generate)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /nlp/sentiment NLP nlpSentiment
// @Summary Classify the sentiment of text
// @Tags NLP
// @Accept json
// @Produce json
// @Param payload body domain.TextInput true "Text"
// @Success 200 {object} domain.SentimentResult "ok"
// @Router /nlp/sentiment [post]
func (h *handlers) sentiment(r *stdhttp.Request, in domain.TextInput) (any, error) {
	return h.svc.Sentiment(r.Context(), str.Deref(in.Text))
}

// swagger:route POST /nlp/keywords NLP nlpKeywords
// @Summary Extract the most frequent keywords
// @Tags NLP
// @Accept json
// @Produce json
// @Param payload body domain.TextInput true "Text"
// @Success 200 {object} domain.KeywordResult "ok"
// @Router /nlp/keywords [post]
func (h *handlers) keywords(r *stdhttp.Request, in domain.TextInput) (any, error) {
	return h.svc.Keywords(r.Context(), str.Deref(in.Text))
}

// swagger:route POST /nlp/generate NLP nlpGenerate
// @Summary Extend a prompt with random connective words
// @Description Output is random filler, not a language model
// @Tags NLP
// @Accept json
// @Produce json
// @Param payload body domain.GenerateInput true "Prompt"
// @Success 200 {object} domain.GenerationResult "ok"
// @Router /nlp/generate [post]
func (h *handlers) generate(r *stdhttp.Request, in domain.GenerateInput) (any, error) {
	return h.svc.Generate(r.Context(), str.Deref(in.Prompt), in.MaxLength)
}
