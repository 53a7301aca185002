// Package http provides http transport for document search
package http

import (
	stdhttp "net/http"

	"genailab/internal/modkit/httpkit"
	str "genailab/internal/platform/strings"
	"genailab/internal/services/api/rag/domain"
	svc "genailab/internal/services/api/rag/service"
)

// Register mounts rag endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.SetDocumentsInput](r, "/documents", h.setDocuments)
	httpkit.Get(r, "/documents", h.documents)
	httpkit.PostJSON[domain.SearchInput](r, "/search", h.search)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /rag/documents RAG ragSetDocuments
// @Summary Replace the document collection
// @Tags RAG
// @Accept json
// @Produce json
// @Param payload body domain.SetDocumentsInput true "Documents"
// @Success 200 {object} domain.SetDocumentsResult "ok"
// @Router /rag/documents [post]
func (h *handlers) setDocuments(r *stdhttp.Request, in domain.SetDocumentsInput) (any, error) {
	return h.svc.SetDocuments(r.Context(), in.Documents)
}

// swagger:route GET /rag/documents RAG ragDocuments
// @Summary Current document collection
// @Tags RAG
// @Produce json
// @Success 200 {object} domain.Collection "ok"
// @Router /rag/documents [get]
func (h *handlers) documents(r *stdhttp.Request) (any, error) {
	return h.svc.Collection(r.Context())
}

// swagger:route POST /rag/search RAG ragSearch
// @Summary Rank documents by token overlap with a query
// @Tags RAG
// @Accept json
// @Produce json
// @Param payload body domain.SearchInput true "Query"
// @Success 200 {object} domain.SearchResult "ok"
// @Router /rag/search [post]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.Search(r.Context(), str.Deref(in.Query), in.TopK)
}
