// Package rag ranks an in-memory document collection against a query by Jaccard
// similarity of whitespace token sets. The collection is replaced wholesale
package rag

import (
	"sort"
	"sync/atomic"

	"genailab/internal/core/tokenize"
)

// SampleDocuments is the default corpus the API seeds at startup
var SampleDocuments = []string{
	"AI is transforming healthcare through improved diagnosis and treatment planning.",
	"Machine learning algorithms can predict equipment failures in manufacturing.",
	"AI-powered chatbots revolutionize customer service with 24/7 availability.",
	"Generative AI creates new opportunities in content creation and creative industries.",
	"Edge AI enables real-time processing and privacy-preserving applications.",
}

// DefaultTopK is the number of results returned when the caller does not say
const DefaultTopK = 3

// Result is one ranked document
type Result struct {
	Document        string  `json:"document"`
	SimilarityScore float64 `json:"similarityScore"`
	Rank            int     `json:"rank"`
}

// snapshot is never mutated after it is published
type snapshot struct {
	docs []string
	sets []map[string]struct{}
}

// Engine is safe for concurrent use. Searches see either the previous or the new
// collection during SetDocuments, never a mix
type Engine struct {
	cur atomic.Pointer[snapshot]
}

// NewEngine returns an engine holding docs
func NewEngine(docs ...string) *Engine {
	e := &Engine{}
	e.SetDocuments(docs)
	return e
}

// SetDocuments replaces the whole collection
func (e *Engine) SetDocuments(docs []string) {
	s := &snapshot{
		docs: make([]string, len(docs)),
		sets: make([]map[string]struct{}, len(docs)),
	}
	copy(s.docs, docs)
	for i, d := range s.docs {
		s.sets[i] = tokenize.Set(tokenize.Fields(d))
	}
	e.cur.Store(s)
}

func (e *Engine) load() *snapshot {
	if s := e.cur.Load(); s != nil {
		return s
	}
	return &snapshot{}
}

// Len is the size of the current collection
func (e *Engine) Len() int { return len(e.load().docs) }

// Documents returns a copy of the current collection
func (e *Engine) Documents() []string {
	s := e.load()
	out := make([]string, len(s.docs))
	copy(out, s.docs)
	return out
}

// Search returns up to topK documents by descending similarity, ties in collection order.
// Ranks are 1-based. topK <= 0 or an empty collection yields an empty slice
func (e *Engine) Search(query string, topK int) []Result {
	s := e.load()
	if topK <= 0 || len(s.docs) == 0 {
		return []Result{}
	}

	q := tokenize.Set(tokenize.Fields(query))
	scored := make([]Result, len(s.docs))
	for i, d := range s.docs {
		scored[i] = Result{Document: d, SimilarityScore: Jaccard(q, s.sets[i])}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].SimilarityScore > scored[j].SimilarityScore
	})

	if topK < len(scored) {
		scored = scored[:topK]
	}
	for i := range scored {
		scored[i].Rank = i + 1
	}
	return scored
}

// Jaccard is |a ∩ b| / |a ∪ b|; two empty sets score 0
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	inter := 0
	for k := range a {
		if _, ok := b[k]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union <= 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
