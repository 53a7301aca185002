// Package service contains prompt engineering workflows
package service

import (
	"context"
	"time"

	"genailab/internal/core/prompt"
	"genailab/internal/platform/logger"
	"genailab/internal/platform/safe"
	"genailab/internal/services/api/prompts/domain"
)

// Service defines the prompts service contract
type Service interface {
	domain.ServicePort
}

// seams for tests
var (
	now     = func() time.Time { return time.Now().UTC() }
	analyze = prompt.Analyze
)

// Svc implements the prompts service over an immutable catalog
type Svc struct {
	cat *prompt.Catalog
}

// New constructs a prompts service
func New(cat *prompt.Catalog) *Svc {
	if cat == nil {
		panic("prompts.Service requires a non nil Catalog")
	}
	return &Svc{cat: cat}
}

// Analyze scores p. A failed analysis reports zero scores with the error set
func (s *Svc) Analyze(ctx context.Context, p string) (domain.AnalysisResult, error) {
	out := domain.AnalysisResult{Prompt: p, Timestamp: now()}
	a, err := safe.Value("analyze", func() prompt.Analysis { return analyze(p) })
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("prompt analysis failed")
		out.Suggestions = []string{}
		out.Error = safe.Message(err)
		return out, nil
	}
	out.Analysis = a
	return out, nil
}

// Techniques summarizes every technique in catalog order
func (s *Svc) Techniques(_ context.Context) (domain.TechniquesResult, error) {
	sums := s.cat.Summaries()
	return domain.TechniquesResult{Techniques: sums, TotalTechniques: len(sums)}, nil
}

// Examples filters the worked examples
func (s *Svc) Examples(_ context.Context, q domain.ExamplesQuery) ([]prompt.Example, error) {
	return s.cat.Examples(q.Technique, q.Difficulty), nil
}

// Template resolves one template, falling back to the generic text
func (s *Svc) Template(_ context.Context, useCase, technique string) (domain.TemplateResult, error) {
	return domain.TemplateResult{
		UseCase:   useCase,
		Technique: technique,
		Template:  s.cat.Template(useCase, technique),
	}, nil
}

// Templates returns every template by use case then technique
func (s *Svc) Templates(_ context.Context) (map[string]map[string]string, error) {
	return s.cat.Templates(), nil
}

// TechniqueCount reports how many techniques the catalog lists
func (s *Svc) TechniqueCount() int { return len(s.cat.Techniques()) }
