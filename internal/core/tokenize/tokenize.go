// Package tokenize splits normalized text into tokens and filters stopwords.
// All functions are pure and safe for concurrent use
package tokenize

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"genailab/internal/core/lexicon"
	"genailab/internal/core/normalize"
)

// minKeywordLen is the shortest rune length a keyword may have, exclusive
const minKeywordLen = 3

var stopset = sync.OnceValue(func() map[string]struct{} {
	return Set(lexicon.Default().Stopwords())
})

// IsWord reports whether r belongs inside a word token: letters and numbers only
func IsWord(r rune) bool {
	if r == utf8.RuneError || r == 0 {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Words returns the normalized lowercase word tokens of text.
// Any rune that is not a letter or number separates tokens
func Words(text string) []string {
	s := normalize.String(text)
	if s == "" {
		return nil
	}
	return strings.FieldsFunc(s, func(r rune) bool { return !IsWord(r) })
}

// Fields returns the normalized lowercase whitespace-separated tokens of text.
// Punctuation stays attached to its token
func Fields(text string) []string {
	s := normalize.String(text)
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}

// Set collapses duplicates
func Set(tokens []string) map[string]struct{} {
	out := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		out[t] = struct{}{}
	}
	return out
}

// IsStopword reports membership in the embedded English stopword list
func IsStopword(w string) bool {
	_, ok := stopset()[w]
	return ok
}

// WithoutStopwords filters stopwords out of tokens, keeping order
func WithoutStopwords(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if !IsStopword(t) {
			out = append(out, t)
		}
	}
	return out
}

// Keyword reports whether w is longer than three runes, not a stopword and purely alphabetic
func Keyword(w string) bool {
	if utf8.RuneCountInString(w) <= minKeywordLen {
		return false
	}
	if IsStopword(w) {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
