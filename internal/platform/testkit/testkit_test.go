package testkit

import (
	"strings"
	"testing"
)

// recorder captures Fatalf so failing paths can be checked without failing the test
type recorder struct {
	testing.TB
	failed bool
	msg    string
}

func (r *recorder) Helper() {}

func (r *recorder) Fatalf(format string, args ...any) {
	r.failed = true
	r.msg = format
	if len(args) > 0 {
		if s, ok := args[len(args)-1].(string); ok {
			r.msg = s
		}
	}
}

func TestMustPanic(t *testing.T) {
	if got := MustPanic(t, func() { panic("boom") }); got != "boom" {
		t.Fatalf("recovered %v", got)
	}

	rec := &recorder{TB: t}
	MustPanic(rec, func() {})
	if !rec.failed {
		t.Fatal("expected failure when fn returns normally")
	}
}

func TestMustContain(t *testing.T) {
	MustContain(t, "alpha beta gamma", "beta")

	rec := &recorder{TB: t}
	MustContain(rec, strings.Repeat("x", maxShown+10), "y")
	if !rec.failed || !strings.HasSuffix(rec.msg, "...") || len(rec.msg) != maxShown+3 {
		t.Fatalf("failed=%v len=%d", rec.failed, len(rec.msg))
	}
}

var seam = func() string { return "real" }

func TestSwap(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &seam, func() string { return "fake" })
		if seam() != "fake" {
			t.Fatal("swap did not apply")
		}
	})
	if seam() != "real" {
		t.Fatal("swap not restored")
	}
}
