// Package config reads typed settings from prefixed environment variables.
// Bad optional values fall back to their default with a warning; bad required ones panic
package config

import (
	"strconv"
	"strings"
	"time"

	"genailab/internal/platform/config/raw"
	"genailab/internal/platform/logger"
)

// Conf is a prefixed view over the environment, e.g. New().Prefix("CORE_API_")
type Conf struct{ env raw.Conf }

// New returns the unprefixed root view
func New() Conf { return Conf{env: raw.New()} }

// Prefix returns a child view with p appended to the prefix
func (c Conf) Prefix(p string) Conf { return Conf{env: c.env.Prefix(p)} }

func (c Conf) key(k string) string { return c.env.Key(k) }

func may[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s, ok := c.env.Lookup(key)
	if !ok {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Interface("default", def).
			Msg("invalid config value, using default")
		return def
	}
	return v
}

func must[T any](c Conf, key string, parse func(string) (T, error)) T {
	s, ok := c.env.Lookup(key)
	if !ok {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Panic().Err(err).Str("key", c.key(key)).Str("value", s).Msg("invalid required env")
	}
	return v
}

func str(s string) (string, error) { return s, nil }

func u64(s string) (uint64, error) { return strconv.ParseUint(s, 10, 64) }

// MustString panics when key is unset or blank
func (c Conf) MustString(key string) string { return must(c, key, str) }

// MustDuration panics when key is unset or not a Go duration like 250ms or 2s
func (c Conf) MustDuration(key string) time.Duration { return must(c, key, time.ParseDuration) }

// MayString returns the trimmed value or def
func (c Conf) MayString(key, def string) string { return may(c, key, def, str) }

// MayInt returns a base 10 int or def
func (c Conf) MayInt(key string, def int) int { return may(c, key, def, strconv.Atoi) }

// MayUint64 returns an unsigned base 10 int or def, e.g. a generator seed
func (c Conf) MayUint64(key string, def uint64) uint64 { return may(c, key, def, u64) }

// MayBool returns a strconv.ParseBool value or def
func (c Conf) MayBool(key string, def bool) bool { return may(c, key, def, strconv.ParseBool) }

// MayDuration returns a Go duration or def
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return may(c, key, def, time.ParseDuration)
}

// MayCSV splits a comma separated list, dropping blanks; def when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	var out []string
	for _, p := range strings.Split(c.MayString(key, ""), ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the value, lower cased, when it is one of allowed, def when unset.
// Anything else panics: a typo in a mode switch should stop the process
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := strings.ToLower(c.MayString(key, def))
	for _, a := range allowed {
		if v == strings.ToLower(a) {
			return v
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
