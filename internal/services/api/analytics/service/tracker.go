package service

import (
	"maps"
	"sync"
)

// Tracker counts requests per route key in process
type Tracker struct {
	mu     sync.Mutex
	counts map[string]int64
	total  int64
}

// NewTracker returns an empty tracker
func NewTracker() *Tracker {
	return &Tracker{counts: make(map[string]int64)}
}

// Record counts one request for key
func (t *Tracker) Record(key string) {
	t.mu.Lock()
	t.counts[key]++
	t.total++
	t.mu.Unlock()
}

// Snapshot returns a copy of the counters and their sum
func (t *Tracker) Snapshot() (map[string]int64, int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return maps.Clone(t.counts), t.total
}
