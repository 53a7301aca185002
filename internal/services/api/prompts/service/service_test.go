package service

import (
	"context"
	"testing"

	"genailab/internal/core/prompt"
	"genailab/internal/platform/testkit"
	"genailab/internal/services/api/prompts/domain"

	"github.com/google/go-cmp/cmp"
)

func TestNew_PanicsOnNil(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil) })
}

func TestAnalyze(t *testing.T) {
	res, err := New(prompt.Default()).Analyze(context.Background(), "Explain exactly how transformers work in JSON format")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.ClarityScore != 2 || res.SpecificityScore != 2 || res.ConstraintScore != 5 || res.FormatScore != 2 {
		t.Fatalf("unexpected scores %+v", res.Analysis)
	}
	if res.OverallScore != 2.2 {
		t.Fatalf("overall = %v", res.OverallScore)
	}
	want := []string{prompt.SuggestMoreContext, prompt.SuggestFewShot, prompt.SuggestOutputFormat}
	if diff := cmp.Diff(want, res.Suggestions); diff != "" {
		t.Fatalf("suggestions (-want +got):\n%s", diff)
	}
}

func TestAnalyze_PanicFoldedIntoResult(t *testing.T) {
	testkit.Swap(t, &analyze, func(string) prompt.Analysis { panic("catalog gone") })

	res, err := New(prompt.Default()).Analyze(context.Background(), "hi")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if res.Error != "analyze: catalog gone" || res.OverallScore != 0 || res.Suggestions == nil || res.Prompt != "hi" {
		t.Fatalf("expected default payload, got %+v", res)
	}
}

func TestCatalogReads(t *testing.T) {
	svc := New(prompt.Default())
	ctx := context.Background()

	tech, _ := svc.Techniques(ctx)
	if tech.TotalTechniques != 6 || len(tech.Techniques) != 6 || svc.TechniqueCount() != 6 {
		t.Fatalf("unexpected techniques %+v", tech)
	}

	exs, _ := svc.Examples(ctx, domain.ExamplesQuery{Difficulty: "advanced"})
	if len(exs) != 2 {
		t.Fatalf("advanced examples = %d", len(exs))
	}
	exs, _ = svc.Examples(ctx, domain.ExamplesQuery{Technique: "few_shot", Difficulty: "advanced"})
	if exs == nil || len(exs) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", exs)
	}

	tpl, _ := svc.Template(ctx, "classification", "zero_shot")
	testkit.MustContain(t, tpl.Template, "{input_text}")
	tpl, _ = svc.Template(ctx, "poetry", "zero_shot")
	if tpl.Template != "Custom prompt template for your specific needs" {
		t.Fatalf("fallback = %q", tpl.Template)
	}

	all, _ := svc.Templates(ctx)
	if len(all["generation"]) != 3 {
		t.Fatalf("generation templates = %+v", all["generation"])
	}
}
