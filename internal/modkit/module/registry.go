package module

import (
	"maps"
	"slices"
	"sync"
)

// process wide registry filled while the API mounts
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register records the ports of the module called name, replacing earlier ones
func Register(name string, ports any) {
	mu.Lock()
	defer mu.Unlock()
	reg[name] = ports
}

// PortsAs returns the ports registered under name when they are a T
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()

	out, ok2 := v.(T)
	return out, ok && ok2
}

// Names lists the registered modules, sorted
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(reg))
}

// Reset empties the registry
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(reg)
}
