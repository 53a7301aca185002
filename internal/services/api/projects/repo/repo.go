// Package repo provides the project registry storage
package repo

import (
	"sync"
	"time"

	"genailab/internal/services/api/projects/domain"
)

// Repo is the registry surface used by the service layer
type Repo interface {
	Insert(p domain.Project) bool
	Get(id string) (domain.Project, bool)
	List() []domain.Project
	UpdateMetrics(id string, patch domain.MetricsPatch, at time.Time) bool
	Len() int
}

// InMemory keeps projects in insertion order for the process lifetime.
// Reads share a lock; inserts and updates are serialized
type InMemory struct {
	mu    sync.RWMutex
	byID  map[string]int
	items []domain.Project
}

// NewInMemory returns an empty registry
func NewInMemory() *InMemory {
	return &InMemory{byID: make(map[string]int)}
}

// Insert stores p unless its id is taken
func (r *InMemory) Insert(p domain.Project) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; ok {
		return false
	}
	r.byID[p.ID] = len(r.items)
	r.items = append(r.items, p)
	return true
}

// Get returns a copy of the project with id
func (r *InMemory) Get(id string) (domain.Project, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[id]
	if !ok {
		return domain.Project{}, false
	}
	return r.items[i], true
}

// List returns copies of every project in insertion order
func (r *InMemory) List() []domain.Project {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Project, len(r.items))
	copy(out, r.items)
	return out
}

// UpdateMetrics merges patch into the project's metrics. Unknown ids leave the registry untouched
func (r *InMemory) UpdateMetrics(id string, patch domain.MetricsPatch, at time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.byID[id]
	if !ok {
		return false
	}
	r.items[i].Metrics = patch.Apply(r.items[i].Metrics, at)
	return true
}

// Len is the number of stored projects
func (r *InMemory) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
