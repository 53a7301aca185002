// Package domain holds DTOs for the nlp http and service contracts
package domain

import (
	"time"

	"genailab/internal/core/keywords"
	"genailab/internal/core/sentiment"
	"genailab/internal/core/textgen"
)

// TextInput carries free text to analyze. An empty string is valid, a missing field is not
type TextInput struct {
	Text *string `json:"text" validate:"required" example:"I love this amazing product"`
}

// GenerateInput carries a prompt for the toy generator
type GenerateInput struct {
	Prompt    *string `json:"prompt" validate:"required" example:"AI will transform"`
	MaxLength int     `json:"maxLength,omitempty" validate:"omitempty,min=10,max=500" example:"100"`
}

// SentimentResult is a classification or the reason it could not be computed
type SentimentResult struct {
	sentiment.Result
	Error string `json:"error,omitempty"`
}

// KeywordResult is a keyword extraction or the reason it could not be computed
type KeywordResult struct {
	Text string `json:"text"`
	keywords.Result
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
}

// GenerationResult is generated filler text or the reason it could not be produced
type GenerationResult struct {
	Prompt string `json:"prompt"`
	textgen.Result
	MaxLength int       `json:"maxLength"`
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error,omitempty"`
}
