package prompt

import "strings"

// Suggestions emitted by Analyze
const (
	SuggestMoreContext     = "Consider adding more context for clarity"
	SuggestFewShot         = "Consider using few-shot examples"
	SuggestOutputFormat    = "Add specific output format requirements"
	SuggestReviewSpecifics = "Review prompt clarity and specificity"
)

var (
	specificityWords = []string{"specific", "exact", "precise", "detailed"}
	limitWords       = []string{"maximum", "minimum", "exactly", "only", "must", "should"}
	structureWords   = []string{"format", "structure", "json", "xml", "table"}
	formatWords      = []string{"format", "output", "response", "answer"}
)

// Analysis scores a prompt on five axes; OverallScore is their mean
type Analysis struct {
	ClarityScore     int      `json:"clarityScore"`
	SpecificityScore int      `json:"specificityScore"`
	ConstraintScore  int      `json:"constraintScore"`
	ExamplesScore    int      `json:"examplesScore"`
	FormatScore      int      `json:"formatScore"`
	OverallScore     float64  `json:"overallScore"`
	Suggestions      []string `json:"suggestions"`
}

// Analyze rates prompt with keyword heuristics. Keywords match as substrings of the lowercased prompt
func Analyze(prompt string) Analysis {
	a := Analysis{Suggestions: []string{}}
	lower := strings.ToLower(prompt)
	words := len(strings.Fields(prompt))

	switch {
	case words < 50:
		a.ClarityScore += 2
		a.Suggestions = append(a.Suggestions, SuggestMoreContext)
	case words < 200:
		a.ClarityScore += 4
	default:
		a.ClarityScore += 5
	}

	if strings.Contains(prompt, "?") {
		a.SpecificityScore += 2
	}
	if containsAny(lower, specificityWords) {
		a.SpecificityScore += 2
	}
	if words > 100 {
		a.SpecificityScore++
	}

	if containsAny(lower, limitWords) {
		a.ConstraintScore += 3
	}
	if containsAny(lower, structureWords) {
		a.ConstraintScore += 2
	}

	if strings.Contains(lower, "example") || strings.Contains(lower, "for instance") {
		a.ExamplesScore += 3
	}

	if containsAny(lower, formatWords) {
		a.FormatScore += 2
	}

	sum := a.ClarityScore + a.SpecificityScore + a.ConstraintScore + a.ExamplesScore + a.FormatScore
	a.OverallScore = float64(sum) / 5

	if a.OverallScore < 3 {
		a.Suggestions = append(a.Suggestions, SuggestFewShot, SuggestOutputFormat)
	}
	if a.OverallScore < 2 {
		a.Suggestions = append(a.Suggestions, SuggestReviewSpecifics)
	}
	return a
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
