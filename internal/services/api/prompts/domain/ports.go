package domain

import (
	"context"

	"genailab/internal/core/prompt"
)

// ServicePort is the interface implemented by the prompts service
type ServicePort interface {
	Analyze(ctx context.Context, p string) (AnalysisResult, error)
	Techniques(ctx context.Context) (TechniquesResult, error)
	Examples(ctx context.Context, q ExamplesQuery) ([]prompt.Example, error)
	Template(ctx context.Context, useCase, technique string) (TemplateResult, error)
	Templates(ctx context.Context) (map[string]map[string]string, error)
	CatalogPort
}

// CatalogPort is the read side other modules aggregate from
type CatalogPort interface {
	TechniqueCount() int
}
