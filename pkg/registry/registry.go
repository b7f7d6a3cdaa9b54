package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrNotFound is returned when a name has no registered factory
	ErrNotFound = errors.New("not found")

	// ErrAlreadyRegistered is returned by Register for a name that is taken
	ErrAlreadyRegistered = errors.New("already registered")
)

// Registry maps variant names to factories of type F
type Registry[F any] struct {
	mu        sync.RWMutex
	kind      string
	factories map[string]F
}

// New creates an empty registry. kind is only used in error messages.
func New[F any](kind string) *Registry[F] {
	return &Registry[F]{
		kind:      kind,
		factories: make(map[string]F),
	}
}

// Kind returns the component kind this registry holds
func (r *Registry[F]) Kind() string {
	return r.kind
}

// Register adds a factory, failing if the name is already taken
func (r *Registry[F]) Register(name string, factory F) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("%s %s: %w", r.kind, name, ErrAlreadyRegistered)
	}

	r.factories[name] = factory
	return nil
}

// Set adds or replaces the factory registered under name
func (r *Registry[F]) Set(name string, factory F) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories[name] = factory
}

// Lookup returns the factory registered under name
func (r *Registry[F]) Lookup(name string) (F, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		var zero F
		return zero, fmt.Errorf("%s %s: %w", r.kind, name, ErrNotFound)
	}

	return factory, nil
}

// Has reports whether name is registered
func (r *Registry[F]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.factories[name]
	return exists
}

// List returns all registered names in sorted order
func (r *Registry[F]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered names
func (r *Registry[F]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.factories)
}
