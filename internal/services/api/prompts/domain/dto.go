// Package domain holds DTOs for prompt engineering helpers
package domain

import (
	"time"

	"genailab/internal/core/prompt"
)

// AnalyzeInput is a prompt to score
type AnalyzeInput struct {
	Prompt *string `json:"prompt" validate:"required" example:"Explain exactly how transformers work in JSON format"`
}

// AnalysisResult is a prompt score or the reason it could not be computed
type AnalysisResult struct {
	Prompt string `json:"prompt"`
	prompt.Analysis
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
}

// TechniquesResult lists the catalog techniques
type TechniquesResult struct {
	Techniques      []prompt.TechniqueSummary `json:"techniques"`
	TotalTechniques int                       `json:"totalTechniques" example:"6"`
}

// ExamplesQuery filters worked examples; empty fields match everything
type ExamplesQuery struct {
	Technique  string
	Difficulty string
}

// TemplateResult is the template for one use case and technique
type TemplateResult struct {
	UseCase   string `json:"useCase" example:"classification"`
	Technique string `json:"technique" example:"zero_shot"`
	Template  string `json:"template"`
}
