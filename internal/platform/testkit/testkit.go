// Package testkit holds the assertions and seams shared by package tests
package testkit

import (
	"strings"
	"testing"
)

// maxShown caps how much of a haystack a failure prints
const maxShown = 2048

// MustPanic fails t unless fn panics, and returns what was recovered
func MustPanic(t testing.TB, fn func()) (recovered any) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Fatalf("expected a panic")
		}
	}()
	fn()
	return nil
}

// MustContain fails t unless haystack contains needle
func MustContain(t testing.TB, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		return
	}
	shown := haystack
	if len(shown) > maxShown {
		shown = shown[:maxShown] + "..."
	}
	t.Fatalf("missing %q in:\n%s", needle, shown)
}

// Swap replaces *target for the rest of the test. Tests that swap a
// package seam must not run in parallel with others reading it
func Swap[T any](t testing.TB, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}
