// Package textgen extends a prompt with random connective words.
// It is a deliberately naive stand-in for a language model: the adjacent-word
// pairs only drive how long the loop runs, never which word is picked
package textgen

import (
	"math/rand/v2"
	"sync"
	"time"
	"unicode/utf8"

	"genailab/internal/core/tokenize"
)

// DefaultMaxLength is used when the caller passes a non-positive length
const DefaultMaxLength = 100

// Source is the randomness the generator draws from
type Source interface {
	// IntN returns a value in [0, n)
	IntN(n int) int
}

// Result of a generation
type Result struct {
	GeneratedText string `json:"generatedText"`
	Length        int    `json:"length"`
}

// Generator is safe for concurrent use
type Generator struct {
	vocab []string

	mu  sync.Mutex
	src Source
}

// New builds a generator over vocab; a nil src is seeded from the clock
func New(vocab []string, src Source) *Generator {
	if src == nil {
		seed := uint64(time.Now().UnixNano())
		src = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	v := make([]string, len(vocab))
	copy(v, vocab)
	return &Generator{vocab: v, src: src}
}

// NewSeeded builds a generator with a reproducible PCG source
func NewSeeded(vocab []string, seed uint64) *Generator {
	return New(vocab, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

type pair struct{ a, b string }

// Generate appends random vocabulary words to prompt until its rune length reaches maxLength.
// Prompts with fewer than two words are returned unchanged
func (g *Generator) Generate(prompt string, maxLength int) Result {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	words := tokenize.Words(prompt)
	pairs := make([]pair, 0, len(words))
	for i := 0; i+1 < len(words); i++ {
		pairs = append(pairs, pair{words[i], words[i+1]})
	}

	text := prompt
	length := utf8.RuneCountInString(text)
	if len(pairs) == 0 || len(g.vocab) == 0 {
		return Result{GeneratedText: text, Length: length}
	}
	last := words[len(words)-1]

	g.mu.Lock()
	defer g.mu.Unlock()
	for length < maxLength && len(pairs) > 0 {
		_ = pairs[g.src.IntN(len(pairs))]
		next := g.vocab[g.src.IntN(len(g.vocab))]
		text += " " + next
		length += 1 + utf8.RuneCountInString(next)
		pairs = append(pairs, pair{last, next})
	}
	return Result{GeneratedText: text, Length: length}
}
