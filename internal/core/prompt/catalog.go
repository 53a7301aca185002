// Package prompt scores prompts against common prompt engineering practices
// and serves a small catalog of techniques, worked examples and templates
package prompt

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

// Technique is a named prompting approach
type Technique struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// TechniqueSummary is a technique plus what the catalog holds for it
type TechniqueSummary struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	ExamplesCount    int      `json:"examplesCount"`
	DifficultyLevels []string `json:"difficultyLevels"`
}

// Example is a worked prompt
type Example struct {
	Name           string `yaml:"name" json:"name"`
	Description    string `yaml:"description" json:"description"`
	Prompt         string `yaml:"prompt" json:"prompt"`
	ExpectedOutput string `yaml:"expectedOutput" json:"expectedOutput"`
	Technique      string `yaml:"technique" json:"technique"`
	Difficulty     string `yaml:"difficulty" json:"difficulty"`
}

type rawCatalog struct {
	Version    int                          `yaml:"version"`
	Techniques []Technique                  `yaml:"techniques"`
	Examples   []Example                    `yaml:"examples"`
	Templates  map[string]map[string]string `yaml:"templates"`
	Fallback   string                       `yaml:"fallbackTemplate"`
}

// Catalog is immutable once loaded
type Catalog struct {
	techniques []Technique
	examples   []Example
	templates  map[string]map[string]string
	fallback   string
}

// Load parses the embedded catalog.yaml
func Load() (*Catalog, error) { return Parse(embedded) }

var defaultOnce = sync.OnceValues(Load)

// Default returns the embedded catalog, parsed once; it panics on a broken embed
func Default() *Catalog {
	c, err := defaultOnce()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes and validates a catalog document
func Parse(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("prompt: parse catalog: %w", err)
	}
	if len(raw.Techniques) == 0 {
		return nil, fmt.Errorf("prompt: catalog has no techniques")
	}
	known := make(map[string]struct{}, len(raw.Techniques))
	for _, t := range raw.Techniques {
		if t.Name == "" {
			return nil, fmt.Errorf("prompt: technique without name")
		}
		known[t.Name] = struct{}{}
	}
	for _, ex := range raw.Examples {
		if _, ok := known[ex.Technique]; !ok {
			return nil, fmt.Errorf("prompt: example %q uses unknown technique %q", ex.Name, ex.Technique)
		}
	}
	if strings.TrimSpace(raw.Fallback) == "" {
		return nil, fmt.Errorf("prompt: catalog has no fallback template")
	}
	if raw.Templates == nil {
		raw.Templates = map[string]map[string]string{}
	}
	return &Catalog{
		techniques: raw.Techniques,
		examples:   raw.Examples,
		templates:  raw.Templates,
		fallback:   raw.Fallback,
	}, nil
}

// Techniques returns the techniques in catalog order
func (c *Catalog) Techniques() []Technique {
	out := make([]Technique, len(c.techniques))
	copy(out, c.techniques)
	return out
}

// Summaries returns each technique with its example count and sorted difficulty levels
func (c *Catalog) Summaries() []TechniqueSummary {
	out := make([]TechniqueSummary, 0, len(c.techniques))
	for _, t := range c.techniques {
		exs := c.Examples(t.Name, "")
		levels := make([]string, 0, len(exs))
		seen := make(map[string]struct{}, len(exs))
		for _, ex := range exs {
			if _, ok := seen[ex.Difficulty]; ok {
				continue
			}
			seen[ex.Difficulty] = struct{}{}
			levels = append(levels, ex.Difficulty)
		}
		sort.Strings(levels)
		out = append(out, TechniqueSummary{
			Name:             t.Name,
			Description:      t.Description,
			ExamplesCount:    len(exs),
			DifficultyLevels: levels,
		})
	}
	return out
}

// Examples filters the worked examples; an empty filter matches everything
func (c *Catalog) Examples(technique, difficulty string) []Example {
	out := []Example{}
	for _, ex := range c.examples {
		if technique != "" && ex.Technique != technique {
			continue
		}
		if difficulty != "" && ex.Difficulty != difficulty {
			continue
		}
		out = append(out, ex)
	}
	return out
}

// Template returns the template for a use case and technique, or the generic fallback
func (c *Catalog) Template(useCase, technique string) string {
	if byTech, ok := c.templates[useCase]; ok {
		if tpl, ok := byTech[technique]; ok {
			return tpl
		}
	}
	return c.fallback
}

// Templates returns a copy of every template keyed by use case then technique
func (c *Catalog) Templates() map[string]map[string]string {
	out := make(map[string]map[string]string, len(c.templates))
	for uc, byTech := range c.templates {
		m := make(map[string]string, len(byTech))
		for k, v := range byTech {
			m[k] = v
		}
		out[uc] = m
	}
	return out
}
