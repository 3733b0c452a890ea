package benchmarks

import (
	"fmt"

	"github.com/axion-project/orac-benchmark/internal/registry"
)

// NewRegistry assembles the canonical benchmark registry. Declaration order
// is the sequential execution order, so dependents are listed after their
// dependencies: energy after memory, scaling after latency and memory.
// Only memory and latency are safe to run concurrently; the others contend
// for the whole machine and would skew each other's numbers.
func NewRegistry(cfg Config) (*registry.Registry, error) {
	cfg = cfg.Normalize()

	return registry.New(
		registry.Benchmark{
			Name:         "memory",
			Description:  "Memory allocation throughput and heap behavior",
			ParallelSafe: true,
			Work:         Memory(cfg.Memory),
		},
		registry.Benchmark{
			Name:         "latency",
			Description:  "Goroutine round-trip latency percentiles",
			ParallelSafe: true,
			Work:         Latency(cfg.Latency),
		},
		registry.Benchmark{
			Name:        "security",
			Description: "SHA-256 chained hashing throughput",
			Work:        Security(cfg.Security),
		},
		registry.Benchmark{
			Name:        "energy",
			Description: "Duty-cycle measurement under bursty load",
			DependsOn:   []string{"memory"},
			Work:        Energy(cfg.Energy),
		},
		registry.Benchmark{
			Name:        "scaling",
			Description: "Parallel speedup of a CPU-bound workload",
			DependsOn:   []string{"latency", "memory"},
			Work:        Scaling(cfg.Scaling),
		},
	)
}

// Names returns the canonical benchmark names in declaration order.
func Names() []string {
	reg, err := NewRegistry(Config{})
	if err != nil {
		// The registry definition is static; failing to build it is a
		// programming error, not a runtime condition.
		panic(fmt.Sprintf("invalid benchmark registry definition: %v", err))
	}
	return reg.Names()
}
