// Package suite names generators, selects checks by name, and
// schedules runs across several suites.
package suite

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"digital.vasic.checks/pkg/check"
)

// ErrNotFound is returned when a suite name is not registered.
var ErrNotFound = errors.New("suite not found")

// Registry defines the interface for managing named generators.
type Registry interface {
	// Register adds a generator under name.
	Register(name string, gen check.Generator) error

	// Get retrieves a generator by name.
	Get(name string) (check.Generator, error)

	// Names returns all registered names sorted.
	Names() []string

	// Count returns the number of registered suites.
	Count() int
}

// DefaultRegistry is the standard Registry implementation. It is
// safe for concurrent use.
type DefaultRegistry struct {
	mu     sync.RWMutex
	suites map[string]check.Generator
}

// NewRegistry creates a new, empty DefaultRegistry.
func NewRegistry() *DefaultRegistry {
	return &DefaultRegistry{
		suites: make(map[string]check.Generator),
	}
}

// Register adds a generator. Returns an error if the name is
// empty, the generator is nil, or the name is taken.
func (r *DefaultRegistry) Register(
	name string,
	gen check.Generator,
) error {
	if name == "" {
		return errors.New("suite name must not be empty")
	}
	if gen == nil {
		return fmt.Errorf("suite %s: generator is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.suites[name]; exists {
		return fmt.Errorf("suite already registered: %s", name)
	}
	r.suites[name] = gen
	return nil
}

// Get retrieves a generator by name.
func (r *DefaultRegistry) Get(name string) (check.Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gen, exists := r.suites[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return gen, nil
}

// Names returns all registered suite names sorted.
func (r *DefaultRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.suites))
	for name := range r.suites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered suites.
func (r *DefaultRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.suites)
}
