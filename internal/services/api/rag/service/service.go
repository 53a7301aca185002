// Package service contains document search workflows
package service

import (
	"context"
	"time"

	"genailab/internal/core/rag"
	"genailab/internal/platform/logger"
	"genailab/internal/platform/metrics"
	"genailab/internal/platform/safe"
	"genailab/internal/services/api/rag/domain"
)

// Service defines the rag service contract
type Service interface {
	domain.ServicePort
}

// now is a seam for tests
var now = func() time.Time { return time.Now().UTC() }

// Svc implements the rag service over a shared engine
type Svc struct {
	engine  *rag.Engine
	metrics *metrics.Metrics
}

// New constructs a rag service. m may be nil
func New(engine *rag.Engine, m *metrics.Metrics) *Svc {
	if engine == nil {
		panic("rag.Service requires a non nil Engine")
	}
	m.SetRAGDocuments(engine.Len())
	return &Svc{engine: engine, metrics: m}
}

// SetDocuments atomically replaces the collection
func (s *Svc) SetDocuments(ctx context.Context, docs []string) (domain.SetDocumentsResult, error) {
	s.engine.SetDocuments(docs)
	n := s.engine.Len()
	s.metrics.SetRAGDocuments(n)
	logger.C(ctx).Info().Int("documents", n).Msg("document collection replaced")
	return domain.SetDocumentsResult{Message: "documents replaced", TotalDocuments: n}, nil
}

// Search ranks the current collection against query.
// A zero topK uses rag.DefaultTopK
func (s *Svc) Search(ctx context.Context, query string, topK int) (domain.SearchResult, error) {
	if topK == 0 {
		topK = rag.DefaultTopK
	}
	out := domain.SearchResult{Query: query, Timestamp: now()}
	res, err := safe.Value("search", func() []rag.Result { return s.engine.Search(query, topK) })
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("document search failed")
		out.Error = safe.Message(err)
		res = nil
	}
	if res == nil {
		res = []rag.Result{}
	}
	out.Results = res
	out.TotalDocuments = s.engine.Len()
	return out, nil
}

// Collection returns a copy of the current documents
func (s *Svc) Collection(_ context.Context) (domain.Collection, error) {
	docs := s.engine.Documents()
	return domain.Collection{Documents: docs, TotalDocuments: len(docs)}, nil
}

// TotalDocuments reports the collection size
func (s *Svc) TotalDocuments() int { return s.engine.Len() }
