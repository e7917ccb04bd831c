package view

import (
	"sync"

	"github.com/tendril-ui/tendril/markup"
)

// ComponentRegistry maps tag names to component factories. It implements
// markup.Registry and is passed explicitly to the parser and runtime; there
// is no process-wide registry.
//
// Register all components before the first parse. The registry is consulted
// read-only during a parse; mutating it mid-parse is not supported.
type ComponentRegistry struct {
	mu        sync.RWMutex
	factories map[string]markup.Factory
}

// NewComponentRegistry creates an empty registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{factories: make(map[string]markup.Factory)}
}

// Register adds or replaces the factory for a tag name.
func (r *ComponentRegistry) Register(tag string, factory markup.Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[tag] = factory
}

// Lookup returns the factory for a tag name, if registered.
func (r *ComponentRegistry) Lookup(tag string) (markup.Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[tag]
	return f, ok
}

// Tags returns the registered tag names.
func (r *ComponentRegistry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.factories))
	for tag := range r.factories {
		tags = append(tags, tag)
	}
	return tags
}
