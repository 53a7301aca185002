// Package normalize folds text into the canonical form every analyzer compares on.
//
// The steps run in this order: invalid UTF-8 dropped, non-space control runes removed,
// NFKC, case folding, combining and format marks stripped, fullwidth folded to ASCII,
// whitespace runs collapsed to one space and trimmed.
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// control runes that are not whitespace; tabs and newlines survive until the collapse
var junk = runes.Predicate(func(r rune) bool { return unicode.IsControl(r) && !unicode.IsSpace(r) })

// transformer chains keep state, so each call borrows its own
var chains = sync.Pool{
	New: func() any {
		return transform.Chain(
			runes.Remove(junk),
			norm.NFKC,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Mn)),
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

// String returns the normalized form of s. It is idempotent and safe for concurrent use
func String(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	tr := chains.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chains.Put(tr)
	if err != nil {
		out = strings.ToLower(s)
	}
	return strings.Join(strings.Fields(out), " ")
}
