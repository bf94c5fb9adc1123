package gfx

import (
	"fmt"
	"sort"
	"sync"
)

// Factory opens a surface for one object.
type Factory func(t Target) (Surface, error)

// Registry state, guarded because backends register from init functions.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register makes a backend available by name. It is called from init() in
// backend packages, following the database/sql driver pattern:
//
//	func init() {
//	    gfx.Register("tkcanvas", Open)
//	}
//
// Register panics if factory is nil or the name is already registered.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("gfx: Register factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("gfx: Register called twice for " + name)
	}
	factories[name] = factory
}

// Unregister removes a backend. It is meant for tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Open opens a surface on the named backend.
// The error mentions a forgotten import when the backend is unknown.
func Open(name string, t Target) (Surface, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("gfx: unknown backend %q (forgotten import?)", name)
	}
	return factory(t)
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend with the given name exists.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}
