package domain

import "context"

// ServicePort is the interface implemented by the projects service
type ServicePort interface {
	Create(ctx context.Context, in CreateInput) (Project, error)
	Get(ctx context.Context, id string) (Project, error)
	List(ctx context.Context) ([]Project, error)
	UpdateMetrics(ctx context.Context, id string, patch MetricsPatch) (UpdateResult, error)
	SummaryPort
}

// SummaryPort is the read side other modules aggregate from
type SummaryPort interface {
	Summary(ctx context.Context) (Summary, error)
}
