package assertion

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps assertion names to verifier entries.
type Registry interface {
	// Register adds an entry. Returns an error if the name is
	// already registered.
	Register(entry Entry) error

	// Lookup returns the entry registered under name.
	Lookup(name string) (Entry, bool)

	// Has reports whether name is registered.
	Has(name string) bool

	// Names returns every registered name, sorted.
	Names() []string
}

// DefaultRegistry is the standard Registry implementation. It
// is safe for concurrent use; verification runs only read it.
type DefaultRegistry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewRegistry creates a DefaultRegistry with the built-in
// entries pre-registered.
func NewRegistry() *DefaultRegistry {
	r := NewEmptyRegistry()
	for _, e := range Builtins() {
		r.entries[e.Name] = e
	}
	return r
}

// NewEmptyRegistry creates a DefaultRegistry with no entries.
func NewEmptyRegistry() *DefaultRegistry {
	return &DefaultRegistry{
		entries: make(map[string]Entry),
	}
}

// Register adds entry under entry.Name.
func (r *DefaultRegistry) Register(entry Entry) error {
	if entry.Name == "" {
		return fmt.Errorf("assertion name is required")
	}
	if entry.Verify == nil {
		return fmt.Errorf(
			"assertion %s has no verifier", entry.Name,
		)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[entry.Name]; exists {
		return fmt.Errorf(
			"assertion already registered: %s", entry.Name,
		)
	}

	r.entries[entry.Name] = entry
	return nil
}

// Lookup returns the entry registered under name.
func (r *DefaultRegistry) Lookup(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// Has reports whether name is registered.
func (r *DefaultRegistry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns every registered assertion name, sorted.
func (r *DefaultRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.entries))
	for name := range r.entries {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
