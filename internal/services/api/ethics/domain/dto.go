// Package domain holds DTOs for bias screening
package domain

import "genailab/internal/core/bias"

// TextInput is the text to screen
type TextInput struct {
	Text *string `json:"text" validate:"required" example:"Young women are better at this job"`
}

// BiasResult is a bias scan or the reason it could not be computed
type BiasResult struct {
	Text string `json:"text"`
	bias.Result
	Error string `json:"error,omitempty"`
}

// MitigationInput carries a previous /ethics/bias result back for suggestions
type MitigationInput struct {
	BiasResult *BiasResult `json:"biasResult" validate:"required"`
}

// MitigationResult lists one suggestion per detected category
type MitigationResult struct {
	Suggestions []string `json:"suggestions"`
	Count       int      `json:"count" example:"2"`
	Error       string   `json:"error,omitempty"`
}
