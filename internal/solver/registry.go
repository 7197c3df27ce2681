package solver

import (
	"fmt"
	"sort"
)

// Name→constructor mapping for the available solvers.
//
// A Registry is an explicitly constructed instance passed to callers, not
// process-global state, so tests and concurrent configurations stay
// isolated. Registration happens at composition time; lookups afterwards
// are read-only.
type Registry struct {
	constructors map[string]func() Algorithm
}

func NewRegistry() *Registry {
	return &Registry{constructors: make(map[string]func() Algorithm)}
}

// DefaultRegistry returns a registry with the built-in solvers. The
// genetic solver is constructed with the given config; a nil rng in the
// config means a time-seeded source.
func DefaultRegistry(cfg GeneticConfig) *Registry {
	r := NewRegistry()
	r.Register("nearest_neighbor", func() Algorithm { return NewNearestNeighbor() })
	r.Register("genetic", func() Algorithm { return NewGenetic(cfg) })
	return r
}

// Register adds or replaces a solver constructor under the given name.
func (r *Registry) Register(name string, constructor func() Algorithm) {
	r.constructors[name] = constructor
}

// Create instantiates the solver registered under name. The error lists
// the valid names to aid correction; there is no silent default.
func (r *Registry) Create(name string) (Algorithm, error) {
	constructor, ok := r.constructors[name]
	if !ok {
		return nil, fmt.Errorf("algorithm %q (available: %v): %w", name, r.Names(), ErrUnknownAlgorithm)
	}
	return constructor(), nil
}

// Names returns the sorted registered algorithm names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Info returns the identity metadata of the solver registered under name.
func (r *Registry) Info(name string) (string, string, error) {
	algorithm, err := r.Create(name)
	if err != nil {
		return "", "", err
	}
	return algorithm.Name(), algorithm.Description(), nil
}
