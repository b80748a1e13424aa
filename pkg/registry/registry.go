// Package registry maps target names used in contract banks to
// the functions they verify.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"digital.vasic.paramcheck/pkg/contract"
)

// Registry defines the interface for managing verifiable
// target functions.
type Registry interface {
	// Register adds a target under name.
	Register(name string, fn contract.Func) error

	// Get retrieves a target by name.
	Get(name string) (contract.Func, error)

	// Names returns all registered names sorted.
	Names() []string

	// Clear removes all targets.
	Clear()

	// Count returns the number of registered targets.
	Count() int
}

// DefaultRegistry is the standard Registry implementation.
// It is safe for concurrent use.
type DefaultRegistry struct {
	mu      sync.RWMutex
	targets map[string]contract.Func
}

// NewRegistry creates a new, empty DefaultRegistry.
func NewRegistry() *DefaultRegistry {
	return &DefaultRegistry{
		targets: make(map[string]contract.Func),
	}
}

// Default is the package-level default registry instance.
var Default = NewRegistry()

// Register adds a target. Returns an error if the name is
// empty, fn is nil, or the name is already registered.
func (r *DefaultRegistry) Register(
	name string,
	fn contract.Func,
) error {
	if name == "" {
		return fmt.Errorf("target name is required")
	}
	if fn == nil {
		return fmt.Errorf("target %s has no function", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.targets[name]; exists {
		return fmt.Errorf(
			"target already registered: %s", name,
		)
	}

	r.targets[name] = fn
	return nil
}

// MustRegister is Register for package initialisation; it
// panics on error.
func (r *DefaultRegistry) MustRegister(
	name string,
	fn contract.Func,
) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// Get retrieves a target by name.
func (r *DefaultRegistry) Get(
	name string,
) (contract.Func, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, exists := r.targets[name]
	if !exists {
		return nil, fmt.Errorf(
			"target not found: %s", name,
		)
	}
	return fn, nil
}

// Names returns all registered target names sorted.
func (r *DefaultRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.targets))
	for name := range r.targets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Clear removes all targets.
func (r *DefaultRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.targets = make(map[string]contract.Func)
}

// Count returns the number of registered targets.
func (r *DefaultRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.targets)
}
