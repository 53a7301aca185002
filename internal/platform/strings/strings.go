// Package strings has the few string helpers the stdlib package lacks
package strings

import std "strings"

// IfEmpty is def when in has no elements
func IfEmpty[T any](in, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString returns s, panicking with "<what> is required" when s is blank
func MustString(s, what string) string {
	if std.TrimSpace(s) == "" {
		panic(what + " is required")
	}
	return s
}

// MustPrefix turns s into a mount path with exactly one leading slash and no
// trailing one. A blank or root-only s panics
func MustPrefix(s string) string {
	p := "/" + std.Trim(s, " /")
	if p == "/" {
		panic("mount prefix is required")
	}
	return p
}

// Deref is *ps, or "" for nil. Request fields are pointers so that a missing
// key and an empty string stay distinguishable
func Deref(ps *string) string {
	if ps == nil {
		return ""
	}
	return *ps
}
