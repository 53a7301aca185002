package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	SetDocuments(ctx context.Context, docs []string) (SetDocumentsResult, error)
	Search(ctx context.Context, query string, topK int) (SearchResult, error)
	Collection(ctx context.Context) (Collection, error)
	CounterPort
}

// CounterPort reports the collection size without copying it
type CounterPort interface {
	TotalDocuments() int
}
