// Package scheduler partitions selected benchmarks into an execution plan.
package scheduler

import (
	"fmt"

	"github.com/axion-project/orac-benchmark/internal/logger"
	"github.com/axion-project/orac-benchmark/internal/registry"
)

// Plan is the execution plan for one suite run: a concurrent wave followed
// by a strictly ordered sequential tail.
type Plan struct {
	Parallel   []registry.Benchmark // wave: runs concurrently, no ordering among members
	Sequential []registry.Benchmark // tail: runs one at a time, in order
}

// Empty reports whether the plan contains no benchmarks.
func (p Plan) Empty() bool {
	return len(p.Parallel) == 0 && len(p.Sequential) == 0
}

// Total returns the number of benchmarks in the plan.
func (p Plan) Total() int {
	return len(p.Parallel) + len(p.Sequential)
}

// ParallelNames returns the names of the wave members in plan order.
func (p Plan) ParallelNames() []string {
	return names(p.Parallel)
}

// SequentialNames returns the names of the tail members in plan order.
func (p Plan) SequentialNames() []string {
	return names(p.Sequential)
}

func names(benchmarks []registry.Benchmark) []string {
	out := make([]string, len(benchmarks))
	for i, b := range benchmarks {
		out[i] = b.Name
	}
	return out
}

// Build computes the execution plan for the selected benchmarks.
//
// When parallel execution is disabled, or fewer than two benchmarks are
// selected, every benchmark lands in the sequential tail in its selection
// order. No dependency reordering happens on this path; the registry's
// declared order is trusted as-is.
//
// Otherwise the selection is split into the parallel-safe wave and the
// sequential tail, each preserving its relative selection order. The wave
// runs to completion before the tail starts, so a tail benchmark may depend
// on any wave member or on an earlier tail member.
func Build(selected []registry.Benchmark, parallelEnabled bool) Plan {
	var plan Plan

	if !parallelEnabled || len(selected) < 2 {
		plan.Sequential = append(plan.Sequential, selected...)
	} else {
		for _, b := range selected {
			if b.ParallelSafe {
				plan.Parallel = append(plan.Parallel, b)
			} else {
				plan.Sequential = append(plan.Sequential, b)
			}
		}
	}

	logger.Op.WithFields(map[string]interface{}{
		"parallel":   plan.ParallelNames(),
		"sequential": plan.SequentialNames(),
	}).Debug("execution plan computed")

	for _, hazard := range plan.Hazards() {
		logger.Op.WithFields(map[string]interface{}{"hazard": hazard}).
			Warn("dependency ordering is not guaranteed by this plan")
	}

	return plan
}

// Hazards reports dependency declarations the plan's fixed ordering does not
// satisfy. The plan is still executed as computed; hazards are diagnostics
// for registry authors, who must list dependents after their dependencies.
func (p Plan) Hazards() []string {
	position := make(map[string]int, p.Total())
	for i, b := range p.Parallel {
		position[b.Name] = i
	}
	// Tail members order after every wave member.
	offset := len(p.Parallel)
	for i, b := range p.Sequential {
		position[b.Name] = offset + i
	}

	var hazards []string
	check := func(b registry.Benchmark, pos int, concurrent bool) {
		for _, dep := range b.DependsOn {
			depPos, present := position[dep]
			switch {
			case !present:
				hazards = append(hazards,
					fmt.Sprintf("%s depends on %s, which is not in this run", b.Name, dep))
			case concurrent:
				// no ordering exists among wave members, and the tail runs
				// after the wave, so any dependency here is unsatisfiable
				hazards = append(hazards,
					fmt.Sprintf("%s runs in the concurrent wave but depends on %s", b.Name, dep))
			case depPos >= pos:
				hazards = append(hazards,
					fmt.Sprintf("%s runs before its dependency %s", b.Name, dep))
			}
		}
	}

	for i, b := range p.Parallel {
		check(b, i, true)
	}
	for i, b := range p.Sequential {
		check(b, offset+i, false)
	}
	return hazards
}
