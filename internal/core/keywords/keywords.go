// Package keywords ranks the most frequent content words of a text
package keywords

import (
	"sort"

	"genailab/internal/core/tokenize"
)

// Limit is the maximum number of keywords returned
const Limit = 10

// Keyword is a word and how often it occurred
type Keyword struct {
	Word      string `json:"word"`
	Frequency int    `json:"frequency"`
}

// Result of a keyword extraction
type Result struct {
	Keywords       []Keyword `json:"keywords"`
	TotalWords     int       `json:"totalWords"`
	UniqueKeywords int       `json:"uniqueKeywords"`
}

// Extract returns the top keywords of text by descending frequency.
// Equal frequencies keep first-seen order. TotalWords counts every token,
// UniqueKeywords counts distinct keywords before the cut to Limit
func Extract(text string) Result {
	words := tokenize.Words(text)

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, w := range words {
		if !tokenize.Keyword(w) {
			continue
		}
		if _, seen := counts[w]; !seen {
			order = append(order, w)
		}
		counts[w]++
	}

	ranked := make([]Keyword, len(order))
	for i, w := range order {
		ranked[i] = Keyword{Word: w, Frequency: counts[w]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Frequency > ranked[j].Frequency
	})
	if len(ranked) > Limit {
		ranked = ranked[:Limit]
	}

	return Result{
		Keywords:       ranked,
		TotalWords:     len(words),
		UniqueKeywords: len(order),
	}
}
