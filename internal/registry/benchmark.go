// Package registry holds the benchmark definitions a suite run selects from.
package registry

import (
	"context"
	"fmt"
)

// WorkFunc is the function signature for a benchmark's measurement logic.
// The returned value is serialized verbatim into the benchmark's report entry.
type WorkFunc func(ctx context.Context) (interface{}, error)

// Benchmark represents a single registered benchmark.
type Benchmark struct {
	Name         string
	Description  string
	DependsOn    []string // names of benchmarks this benchmark depends on
	ParallelSafe bool     // safe to run concurrently with other parallel-safe benchmarks
	Work         WorkFunc
}

// Registry is an ordered, validated collection of benchmarks.
// Registration order is preserved; it defines the sequential execution order.
type Registry struct {
	entries []Benchmark
	byName  map[string]int
}

// New builds a registry from the given benchmarks. It rejects empty or
// duplicate names, missing work functions, dependencies on unregistered
// benchmarks, and dependency cycles.
func New(entries ...Benchmark) (*Registry, error) {
	r := &Registry{
		entries: make([]Benchmark, 0, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}

	for _, b := range entries {
		if b.Name == "" {
			return nil, fmt.Errorf("benchmark name cannot be empty")
		}
		if _, exists := r.byName[b.Name]; exists {
			return nil, fmt.Errorf("duplicate benchmark name %s", b.Name)
		}
		if b.Work == nil {
			return nil, fmt.Errorf("benchmark %s has no work function", b.Name)
		}
		r.byName[b.Name] = len(r.entries)
		r.entries = append(r.entries, b)
	}

	if err := r.validateDependencies(); err != nil {
		return nil, err
	}

	return r, nil
}

// validateDependencies ensures all dependencies reference registered
// benchmarks and form no cycle.
func (r *Registry) validateDependencies() error {
	for _, b := range r.entries {
		for _, dep := range b.DependsOn {
			if _, exists := r.byName[dep]; !exists {
				return fmt.Errorf("benchmark %s depends on non-existent benchmark %s", b.Name, dep)
			}
			if dep == b.Name {
				return fmt.Errorf("benchmark %s depends on itself", b.Name)
			}
		}
	}

	g := newGraph()
	for _, b := range r.entries {
		g.addNode(b.Name)
	}
	for _, b := range r.entries {
		for _, dep := range b.DependsOn {
			g.addEdge(b.Name, dep)
		}
	}
	if _, err := g.topologicalSort(); err != nil {
		return err
	}
	return nil
}

// All returns the benchmarks in registration order.
func (r *Registry) All() []Benchmark {
	out := make([]Benchmark, len(r.entries))
	copy(out, r.entries)
	return out
}

// Names returns the benchmark names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, b := range r.entries {
		names[i] = b.Name
	}
	return names
}

// Lookup returns the benchmark with the given name.
func (r *Registry) Lookup(name string) (Benchmark, bool) {
	idx, ok := r.byName[name]
	if !ok {
		return Benchmark{}, false
	}
	return r.entries[idx], true
}

// Len returns the number of registered benchmarks.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Select resolves an execution mode into the benchmarks to run.
// Mode "all" selects every benchmark in registration order; any other
// mode selects the single benchmark with that name.
func (r *Registry) Select(mode string) ([]Benchmark, error) {
	if mode == "all" {
		return r.All(), nil
	}
	b, ok := r.Lookup(mode)
	if !ok {
		return nil, fmt.Errorf("unknown mode: %s", mode)
	}
	return []Benchmark{b}, nil
}
