// Package service contains the text analysis workflows
package service

import (
	"context"
	"time"
	"unicode/utf8"

	"genailab/internal/core/keywords"
	"genailab/internal/core/sentiment"
	"genailab/internal/core/textgen"
	"genailab/internal/platform/logger"
	"genailab/internal/platform/safe"
	"genailab/internal/services/api/nlp/domain"
)

// Classifier scores the sentiment of text
type Classifier interface {
	Analyze(text string) (sentiment.Result, error)
}

// Generator produces filler text from a prompt
type Generator interface {
	Generate(prompt string, maxLength int) textgen.Result
}

// Service defines the nlp service contract
type Service interface {
	domain.ServicePort
}

// seams for tests
var (
	now     = func() time.Time { return time.Now().UTC() }
	extract = keywords.Extract
)

// Svc implements the nlp service
type Svc struct {
	clf Classifier
	gen Generator
}

// New constructs an nlp service
func New(clf Classifier, gen Generator) *Svc {
	if clf == nil {
		panic("nlp.Service requires a non nil Classifier")
	}
	if gen == nil {
		panic("nlp.Service requires a non nil Generator")
	}
	return &Svc{clf: clf, gen: gen}
}

// Sentiment classifies text. Scoring failures are reported in the result, not as an error
func (s *Svc) Sentiment(ctx context.Context, text string) (domain.SentimentResult, error) {
	res, err := safe.Do("sentiment", func() (sentiment.Result, error) { return s.clf.Analyze(text) })
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("sentiment scoring failed")
		return domain.SentimentResult{
			Result: sentiment.Result{
				Text:      text,
				Sentiment: sentiment.Neutral,
				Scores:    map[sentiment.Label]float64{},
				Timestamp: now(),
			},
			Error: safe.Message(err),
		}, nil
	}
	return domain.SentimentResult{Result: res}, nil
}

// Keywords extracts the most frequent keywords of text
func (s *Svc) Keywords(ctx context.Context, text string) (domain.KeywordResult, error) {
	out := domain.KeywordResult{Text: text, Timestamp: now()}
	res, err := safe.Value("keywords", func() keywords.Result { return extract(text) })
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("keyword extraction failed")
		out.Keywords = []keywords.Keyword{}
		out.Error = safe.Message(err)
		return out, nil
	}
	out.Result = res
	return out, nil
}

// Generate appends random connective words to prompt until maxLength runes.
// A maxLength of 0 uses the generator default
func (s *Svc) Generate(ctx context.Context, prompt string, maxLength int) (domain.GenerationResult, error) {
	if maxLength <= 0 {
		maxLength = textgen.DefaultMaxLength
	}
	out := domain.GenerationResult{Prompt: prompt, MaxLength: maxLength, Timestamp: now()}
	res, err := safe.Value("generate", func() textgen.Result { return s.gen.Generate(prompt, maxLength) })
	if err != nil {
		logger.C(ctx).Warn().Err(err).Msg("text generation failed")
		out.Result = textgen.Result{GeneratedText: prompt, Length: utf8.RuneCountInString(prompt)}
		out.Error = safe.Message(err)
		return out, nil
	}
	out.Result = res
	return out, nil
}
