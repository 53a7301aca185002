// Package sentiment is a bag-of-words sentiment classifier trained once from the lexicon examples.
// A trained Classifier is immutable and safe for concurrent use
package sentiment

import (
	"errors"
	"time"

	"genailab/internal/core/lexicon"
	"genailab/internal/core/tokenize"
)

// Label is a sentiment class
type Label string

// Labels in tie-break priority order
const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// Labels lists every label in tie-break priority order
var Labels = []Label{Positive, Negative, Neutral}

// ErrNoTrainingData is returned when every label is empty
var ErrNoTrainingData = errors.New("sentiment: no training data")

// now is a seam for tests
var now = func() time.Time { return time.Now().UTC() }

// Result is a single classification
type Result struct {
	Text       string            `json:"text"`
	Sentiment  Label             `json:"sentiment"`
	Confidence float64           `json:"confidence"`
	Scores     map[Label]float64 `json:"scores"`
	Timestamp  time.Time         `json:"timestamp"`
}

type example struct {
	set  map[string]struct{}
	size int
}

type profile struct {
	vocab    map[string]struct{}
	examples []example
}

// Classifier holds one vocabulary profile per label
type Classifier struct {
	profiles map[Label]*profile
}

// Train builds a classifier from labeled examples
func Train(tr lexicon.Training) (*Classifier, error) {
	if tr.Empty() {
		return nil, ErrNoTrainingData
	}
	c := &Classifier{profiles: make(map[Label]*profile, len(Labels))}
	c.profiles[Positive] = buildProfile(tr.Positive)
	c.profiles[Negative] = buildProfile(tr.Negative)
	c.profiles[Neutral] = buildProfile(tr.Neutral)
	return c, nil
}

func buildProfile(texts []string) *profile {
	p := &profile{vocab: make(map[string]struct{})}
	for _, t := range texts {
		for _, w := range tokenize.WithoutStopwords(tokenize.Words(t)) {
			p.vocab[w] = struct{}{}
		}
		fields := tokenize.Fields(t)
		p.examples = append(p.examples, example{set: tokenize.Set(fields), size: len(fields)})
	}
	return p
}

// Scores returns, per label, the fraction of query tokens found in that label's vocabulary.
// The bool reports whether any label matched at all
func (c *Classifier) Scores(text string) (map[Label]float64, bool) {
	tokens := tokenize.WithoutStopwords(tokenize.Words(text))
	scores := make(map[Label]float64, len(Labels))
	overlap := false
	for _, l := range Labels {
		scores[l] = 0
		if len(tokens) == 0 {
			continue
		}
		hits := 0
		for _, tok := range tokens {
			if _, ok := c.profiles[l].vocab[tok]; ok {
				hits++
			}
		}
		if hits > 0 {
			overlap = true
		}
		scores[l] = float64(hits) / float64(len(tokens))
	}
	return scores, overlap
}

// Classify returns the best scoring label; ties go to the earlier label in Labels
func (c *Classifier) Classify(text string) Label {
	scores, _ := c.Scores(text)
	return argmax(scores)
}

func argmax(scores map[Label]float64) Label {
	best := Labels[0]
	for _, l := range Labels[1:] {
		if scores[l] > scores[best] {
			best = l
		}
	}
	return best
}

// Confidence is a crude secondary pass independent of Classify: the best whitespace-token
// overlap between text and a single training example of label, doubled and capped at 1
func (c *Classifier) Confidence(text string, label Label) float64 {
	p, ok := c.profiles[label]
	if !ok {
		return 0
	}
	query := tokenize.Fields(text)
	if len(query) == 0 {
		return 0
	}
	best := 0.0
	for _, ex := range p.examples {
		hits := 0
		for _, q := range query {
			if _, ok := ex.set[q]; ok {
				hits++
			}
		}
		ratio := float64(hits) / float64(max(len(query), ex.size))
		if ratio > best {
			best = ratio
		}
	}
	return min(best*2, 1.0)
}

// Analyze classifies text and scores the confidence of the chosen label.
// Text with no vocabulary overlap still gets a label, with confidence 0
func (c *Classifier) Analyze(text string) (Result, error) {
	if c == nil || len(c.profiles) == 0 {
		return Result{}, ErrNoTrainingData
	}
	scores, overlap := c.Scores(text)
	label := argmax(scores)

	conf := 0.0
	if overlap {
		conf = c.Confidence(text, label)
	}
	return Result{
		Text:       text,
		Sentiment:  label,
		Confidence: conf,
		Scores:     scores,
		Timestamp:  now(),
	}, nil
}
