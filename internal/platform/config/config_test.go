package config

import (
	"testing"
	"time"

	kit "genailab/internal/platform/testkit"
)

func TestPrefix(t *testing.T) {
	c := New().Prefix("CORE_").Prefix("API_")
	if got := c.key("API_PORT"); got != "CORE_API_API_PORT" {
		t.Fatalf("key = %q", got)
	}
}

func TestMust(t *testing.T) {
	c := New().Prefix("CFGTEST_")
	t.Setenv("CFGTEST_NAME", "  genailab ")
	t.Setenv("CFGTEST_GRACE", "250ms")
	t.Setenv("CFGTEST_BAD", "soon")

	if got := c.MustString("NAME"); got != "genailab" {
		t.Fatalf("MustString = %q", got)
	}
	if got := c.MustDuration("GRACE"); got != 250*time.Millisecond {
		t.Fatalf("MustDuration = %v", got)
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
	kit.MustPanic(t, func() { _ = c.MustDuration("BAD") })
}

func TestMay(t *testing.T) {
	c := New().Prefix("CFGTEST_")
	t.Setenv("CFGTEST_SEED", "42")
	t.Setenv("CFGTEST_TOPK", "7")
	t.Setenv("CFGTEST_SWAGGER", "false")
	t.Setenv("CFGTEST_GRACE", "2s")
	t.Setenv("CFGTEST_BROKEN", "x")

	if got := c.MayUint64("SEED", 0); got != 42 {
		t.Fatalf("MayUint64 = %d", got)
	}
	if got := c.MayInt("TOPK", 3); got != 7 {
		t.Fatalf("MayInt = %d", got)
	}
	if c.MayBool("SWAGGER", true) {
		t.Fatalf("MayBool should read false")
	}
	if got := c.MayDuration("GRACE", time.Second); got != 2*time.Second {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayString("MISSING", "dflt"); got != "dflt" {
		t.Fatalf("MayString default = %q", got)
	}

	// invalid optional values fall back instead of panicking
	if got := c.MayUint64("BROKEN", 9); got != 9 {
		t.Fatalf("MayUint64 fallback = %d", got)
	}
	if got := c.MayInt("BROKEN", 3); got != 3 {
		t.Fatalf("MayInt fallback = %d", got)
	}
	if !c.MayBool("BROKEN", true) {
		t.Fatalf("MayBool fallback")
	}
	if got := c.MayDuration("BROKEN", time.Second); got != time.Second {
		t.Fatalf("MayDuration fallback = %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CFGTEST_")
	t.Setenv("CFGTEST_ORIGINS", " https://a.example , ,https://b.example ")
	got := c.MayCSV("ORIGINS", nil)
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("MayCSV = %#v", got)
	}
	t.Setenv("CFGTEST_ORIGINS", " , ")
	if got := c.MayCSV("ORIGINS", []string{"*"}); len(got) != 1 || got[0] != "*" {
		t.Fatalf("MayCSV default = %#v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("CFGTEST_")
	if got := c.MayEnum("BIAS_MATCH", "substring", "substring", "token"); got != "substring" {
		t.Fatalf("default = %q", got)
	}
	t.Setenv("CFGTEST_BIAS_MATCH", "TOKEN")
	if got := c.MayEnum("BIAS_MATCH", "substring", "substring", "token"); got != "token" {
		t.Fatalf("case folded = %q", got)
	}
	t.Setenv("CFGTEST_BIAS_MATCH", "fuzzy")
	kit.MustPanic(t, func() { _ = c.MayEnum("BIAS_MATCH", "substring", "substring", "token") })
}
