// Package bias flags demographic trigger words in text and rates the overall risk.
// A Detector is immutable after New and safe for concurrent use
package bias

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"genailab/internal/core/lexicon"
	"genailab/internal/core/normalize"
	"genailab/internal/core/tokenize"
)

// MatchMode selects how patterns match inside text
type MatchMode string

const (
	// MatchSubstring matches patterns anywhere, so "woman" also triggers "man"
	MatchSubstring MatchMode = "substring"
	// MatchToken only accepts matches delimited by non-word runes
	MatchToken MatchMode = "token"
)

// ParseMatchMode accepts "substring", "token" or empty (substring)
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchSubstring:
		return MatchSubstring, nil
	case MatchToken:
		return MatchToken, nil
	}
	return "", fmt.Errorf("bias: unknown match mode %q", s)
}

// Risk is the discretized overall score
type Risk string

// Risk levels
const (
	RiskLow      Risk = "low"
	RiskMedium   Risk = "medium"
	RiskHigh     Risk = "high"
	RiskCritical Risk = "critical"
)

// RiskLevel maps a score to its level: 0 low, 1-2 medium, 3-5 high, above 5 critical
func RiskLevel(score int) Risk {
	switch {
	case score <= 0:
		return RiskLow
	case score <= 2:
		return RiskMedium
	case score <= 5:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// Options tune a Detector
type Options struct {
	Mode MatchMode
}

// CategoryResult reports matches for one category
type CategoryResult struct {
	Detected      bool     `json:"detected"`
	PatternsFound []string `json:"patternsFound"`
	Count         int      `json:"count"`
}

// Result of a scan
type Result struct {
	BiasAnalysis     map[string]CategoryResult `json:"biasAnalysis"`
	OverallBiasScore int                       `json:"overallBiasScore"`
	RiskLevel        Risk                      `json:"riskLevel"`
	Timestamp        time.Time                 `json:"timestamp"`
}

// now is a seam for tests
var now = func() time.Time { return time.Now().UTC() }

type pattern struct {
	word     string // as listed in the table
	norm     string // normalized form fed to the matcher
	category int
}

// Detector scans text against a bias table
type Detector struct {
	table    lexicon.BiasTable
	patterns []pattern
	m        *matcher
	mode     MatchMode
}

// New compiles table into a detector
func New(table lexicon.BiasTable, opts Options) *Detector {
	mode := opts.Mode
	if mode == "" {
		mode = MatchSubstring
	}
	d := &Detector{table: cloneTable(table), mode: mode}
	var norms []string
	for ci, c := range d.table {
		for _, w := range c.Patterns {
			p := pattern{word: w, norm: normalize.String(w), category: ci}
			d.patterns = append(d.patterns, p)
			norms = append(norms, p.norm)
		}
	}
	d.m = compile(norms)
	return d
}

// Mode reports the match mode in effect
func (d *Detector) Mode() MatchMode { return d.mode }

// Categories returns the category names in table order
func (d *Detector) Categories() []string { return d.table.Names() }

// Detect scans text. Each category counts distinct patterns found, listed in table order;
// the overall score is the sum of the counts
func (d *Detector) Detect(text string) Result {
	s := normalize.String(text)
	var keep func(start, end int) bool
	if d.mode == MatchToken {
		keep = func(start, end int) bool { return bounded(s, start, end) }
	}
	found := d.m.find(s, keep)

	res := Result{
		BiasAnalysis: make(map[string]CategoryResult, len(d.table)),
		Timestamp:    now(),
	}
	for ci, c := range d.table {
		cr := CategoryResult{PatternsFound: []string{}}
		for id, p := range d.patterns {
			if p.category == ci && found[id] {
				cr.PatternsFound = append(cr.PatternsFound, p.word)
			}
		}
		cr.Count = len(cr.PatternsFound)
		cr.Detected = cr.Count > 0
		res.BiasAnalysis[c.Name] = cr
		res.OverallBiasScore += cr.Count
	}
	res.RiskLevel = RiskLevel(res.OverallBiasScore)
	return res
}

// SuggestMitigation returns one suggestion per detected category in table order
func (d *Detector) SuggestMitigation(r Result) []string {
	out := []string{}
	for _, c := range d.table {
		if r.BiasAnalysis[c.Name].Detected {
			out = append(out, c.Suggestion)
		}
	}
	return out
}

// bounded reports whether s[start:end] sits between non-word runes or text edges
func bounded(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if tokenize.IsWord(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if tokenize.IsWord(r) {
			return false
		}
	}
	return true
}

func cloneTable(t lexicon.BiasTable) lexicon.BiasTable {
	out := make(lexicon.BiasTable, len(t))
	for i, c := range t {
		p := make([]string, len(c.Patterns))
		copy(p, c.Patterns)
		out[i] = lexicon.Category{Name: c.Name, Patterns: p, Suggestion: c.Suggestion}
	}
	return out
}
