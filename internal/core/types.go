package core

import (
	"slices"
	"sync"
)

// Size is a grid's width and height in cells.
type Size struct {
	W int
	H int
}

// Sim is what the viewer drives: a named grid that can be reseeded, stepped
// and read back as one palette index per cell.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Factory builds a Sim from flag-style options. Unknown keys are ignored.
type Factory func(opts map[string]string) Sim

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes f available under name, replacing any earlier entry.
// Empty names and nil factories are ignored.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	registryMu.Lock()
	registry[name] = f
	registryMu.Unlock()
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[name]
	return f, ok
}

// Names lists the registered sims in sorted order.
func Names() []string {
	registryMu.RLock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	registryMu.RUnlock()
	slices.Sort(names)
	return names
}
