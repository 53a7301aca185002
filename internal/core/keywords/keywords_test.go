package keywords

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"genailab/internal/core/tokenize"
)

func TestExtract(t *testing.T) {
	text := "Machine learning helps healthcare. Machine learning also helps finance, and healthcare needs data."
	got := Extract(text)

	want := Result{
		Keywords: []Keyword{
			{Word: "machine", Frequency: 2},
			{Word: "learning", Frequency: 2},
			{Word: "helps", Frequency: 2},
			{Word: "healthcare", Frequency: 2},
			{Word: "finance", Frequency: 1},
			{Word: "needs", Frequency: 1},
			{Word: "data", Frequency: 1},
		},
		TotalWords:     13,
		UniqueKeywords: 7,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Extract (-want +got):\n%s", diff)
	}
}

func TestExtract_Empty(t *testing.T) {
	got := Extract("")
	if got.TotalWords != 0 || got.UniqueKeywords != 0 || len(got.Keywords) != 0 {
		t.Fatalf("unexpected %+v", got)
	}
	if got.Keywords == nil {
		t.Fatalf("keywords should encode as an empty list, not null")
	}
}

func TestExtract_TruncatesToLimit(t *testing.T) {
	words := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
		"golf", "hotel", "india", "juliet", "kilo", "lima",
	}
	// lima appears most, then the rest once each
	text := strings.Join(words, " ") + " lima lima"
	got := Extract(text)

	if len(got.Keywords) != Limit {
		t.Fatalf("len = %d, want %d", len(got.Keywords), Limit)
	}
	if got.Keywords[0] != (Keyword{Word: "lima", Frequency: 3}) {
		t.Fatalf("first = %+v", got.Keywords[0])
	}
	if got.Keywords[1].Word != "alpha" || got.Keywords[9].Word != "india" {
		t.Fatalf("tie order not first-seen: %+v", got.Keywords)
	}
	if got.UniqueKeywords != 12 || got.TotalWords != 14 {
		t.Fatalf("counts = %d unique, %d total", got.UniqueKeywords, got.TotalWords)
	}
}

func TestExtract_Invariants(t *testing.T) {
	inputs := []string{
		"The quick brown fox jumps over the lazy dog again and again",
		"AI 2024 gpt4 models with with with these those",
		"Ünïcode wörds ärë fine tööö",
	}
	for _, in := range inputs {
		res := Extract(in)
		if len(res.Keywords) > Limit {
			t.Fatalf("too many keywords for %q", in)
		}
		for i, kw := range res.Keywords {
			if !tokenize.Keyword(kw.Word) {
				t.Fatalf("%q is not a keyword", kw.Word)
			}
			if i > 0 && res.Keywords[i-1].Frequency < kw.Frequency {
				t.Fatalf("not sorted: %+v", res.Keywords)
			}
		}
	}
}
