// Package lexicon loads the embedded word lists used by the text utilities:
// sentiment training examples, stopwords, generator connectives and the bias pattern table
package lexicon

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var embedded []byte

// Training holds the labeled example sentences for the sentiment classifier
type Training struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
	Neutral  []string `yaml:"neutral"`
}

// Empty reports whether no label carries any example
func (t Training) Empty() bool {
	return len(t.Positive) == 0 && len(t.Negative) == 0 && len(t.Neutral) == 0
}

// Category is one row of the bias pattern table
type Category struct {
	Name       string   `yaml:"category"`
	Patterns   []string `yaml:"patterns"`
	Suggestion string   `yaml:"suggestion"`
}

// BiasTable is the ordered list of bias categories
type BiasTable []Category

// Names returns the category names in table order
func (b BiasTable) Names() []string {
	out := make([]string, len(b))
	for i, c := range b {
		out[i] = c.Name
	}
	return out
}

type rawLexicon struct {
	Version     int        `yaml:"version"`
	Training    Training   `yaml:"training"`
	Stopwords   []string   `yaml:"stopwords"`
	Connectives []string   `yaml:"connectives"`
	Bias        []Category `yaml:"bias"`
}

// Lexicon is immutable once loaded; accessors hand out copies
type Lexicon struct {
	version     int
	training    Training
	stopwords   []string
	connectives []string
	bias        BiasTable
}

// Load parses the embedded lexicon.yaml
func Load() (*Lexicon, error) { return Parse(embedded) }

var defaultOnce = sync.OnceValues(Load)

// Default returns the process-wide embedded lexicon, parsed once.
// It panics if the embedded file is invalid, which the package tests guard against
func Default() *Lexicon {
	lx, err := defaultOnce()
	if err != nil {
		panic(err)
	}
	return lx
}

// Parse decodes and validates a lexicon document
func Parse(data []byte) (*Lexicon, error) {
	var raw rawLexicon
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("lexicon: parse: %w", err)
	}
	if err := validate(&raw); err != nil {
		return nil, err
	}

	lx := &Lexicon{
		version: raw.Version,
		training: Training{
			Positive: cleanList(raw.Training.Positive, false),
			Negative: cleanList(raw.Training.Negative, false),
			Neutral:  cleanList(raw.Training.Neutral, false),
		},
		stopwords:   cleanList(raw.Stopwords, true),
		connectives: cleanList(raw.Connectives, true),
		bias:        make(BiasTable, 0, len(raw.Bias)),
	}
	for _, c := range raw.Bias {
		lx.bias = append(lx.bias, Category{
			Name:       strings.TrimSpace(c.Name),
			Patterns:   cleanList(c.Patterns, true),
			Suggestion: strings.TrimSpace(c.Suggestion),
		})
	}
	return lx, nil
}

func validate(raw *rawLexicon) error {
	if len(raw.Training.Positive) == 0 {
		return fmt.Errorf("lexicon: training label %q has no examples", "positive")
	}
	if len(raw.Training.Negative) == 0 {
		return fmt.Errorf("lexicon: training label %q has no examples", "negative")
	}
	if len(raw.Training.Neutral) == 0 {
		return fmt.Errorf("lexicon: training label %q has no examples", "neutral")
	}
	if len(cleanList(raw.Connectives, true)) == 0 {
		return fmt.Errorf("lexicon: connective vocabulary is empty")
	}
	seen := make(map[string]struct{}, len(raw.Bias))
	for i, c := range raw.Bias {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return fmt.Errorf("lexicon: bias category %d has no name", i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("lexicon: duplicate bias category %q", name)
		}
		seen[name] = struct{}{}
		if len(cleanList(c.Patterns, true)) == 0 {
			return fmt.Errorf("lexicon: bias category %q has no patterns", name)
		}
		if strings.TrimSpace(c.Suggestion) == "" {
			return fmt.Errorf("lexicon: bias category %q has no suggestion", name)
		}
	}
	return nil
}

// cleanList trims entries and drops blanks; lower also lowercases
func cleanList(in []string, lower bool) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if lower {
			s = strings.ToLower(s)
		}
		out = append(out, s)
	}
	return out
}

// Version of the loaded document
func (l *Lexicon) Version() int { return l.version }

// Training returns a copy of the labeled examples
func (l *Lexicon) Training() Training {
	return Training{
		Positive: clone(l.training.Positive),
		Negative: clone(l.training.Negative),
		Neutral:  clone(l.training.Neutral),
	}
}

// Stopwords returns a copy of the stopword list
func (l *Lexicon) Stopwords() []string { return clone(l.stopwords) }

// Connectives returns a copy of the generator vocabulary
func (l *Lexicon) Connectives() []string { return clone(l.connectives) }

// Bias returns a deep copy of the bias pattern table
func (l *Lexicon) Bias() BiasTable {
	out := make(BiasTable, len(l.bias))
	for i, c := range l.bias {
		out[i] = Category{Name: c.Name, Patterns: clone(c.Patterns), Suggestion: c.Suggestion}
	}
	return out
}

func clone(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
