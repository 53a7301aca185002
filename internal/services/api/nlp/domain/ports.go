package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Sentiment(ctx context.Context, text string) (SentimentResult, error)
	Keywords(ctx context.Context, text string) (KeywordResult, error)
	Generate(ctx context.Context, prompt string, maxLength int) (GenerationResult, error)
}
