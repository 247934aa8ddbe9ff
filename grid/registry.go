package grid

import "sync"

// Registry maps instance identifiers to their engines. Each grid instance
// owns a fully independent Engine (window state, debouncer, trigger
// wiring); the registry only tracks lifecycle, it never shares state
// between instances.
type Registry struct {
	mu      sync.RWMutex
	engines map[string]*Engine
}

func NewRegistry() *Registry {
	return &Registry{engines: make(map[string]*Engine)}
}

// Create builds an engine for id and registers it. Creating over an
// existing id closes the old engine first.
func (r *Registry) Create(id string, opts ...Option) *Engine {
	e := New(opts...)
	r.mu.Lock()
	if old, ok := r.engines[id]; ok {
		old.Close()
	}
	r.engines[id] = e
	r.mu.Unlock()
	return e
}

// Get returns the engine for id, if registered.
func (r *Registry) Get(id string) (*Engine, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.engines[id]
	return e, ok
}

// Remove closes and unregisters the engine for id. Unknown ids are a
// no-op.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.engines[id]; ok {
		e.Close()
		delete(r.engines, id)
	}
}

// Len returns the number of registered instances.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.engines)
}
