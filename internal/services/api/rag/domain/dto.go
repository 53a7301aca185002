// Package domain holds DTOs for document search
package domain

import (
	"time"

	"genailab/internal/core/rag"
)

// SetDocumentsInput replaces the whole collection. An empty list clears it
type SetDocumentsInput struct {
	Documents []string `json:"documents" validate:"required"`
}

// SetDocumentsResult acknowledges a replacement
type SetDocumentsResult struct {
	Message        string `json:"message" example:"documents replaced"`
	TotalDocuments int    `json:"totalDocuments" example:"5"`
}

// SearchInput is a ranked search query. TopK defaults to 3
type SearchInput struct {
	Query *string `json:"query" validate:"required" example:"AI in healthcare"`
	TopK  int     `json:"topK,omitempty" validate:"omitempty,min=1,max=10" example:"3"`
}

// SearchResult is a ranked result list or the reason it could not be computed
type SearchResult struct {
	Query          string       `json:"query"`
	Results        []rag.Result `json:"results"`
	TotalDocuments int          `json:"totalDocuments"`
	Timestamp      time.Time    `json:"timestamp"`
	Error          string       `json:"error,omitempty"`
}

// Collection is the current document set
type Collection struct {
	Documents      []string `json:"documents"`
	TotalDocuments int      `json:"totalDocuments"`
}
