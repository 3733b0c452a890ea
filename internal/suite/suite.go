// Package suite wires benchmark selection, planning, execution, and
// reporting into one run.
package suite

import (
	"context"
	"time"

	suiteerrors "github.com/axion-project/orac-benchmark/internal/errors"
	"github.com/axion-project/orac-benchmark/internal/executor"
	"github.com/axion-project/orac-benchmark/internal/logger"
	"github.com/axion-project/orac-benchmark/internal/registry"
	"github.com/axion-project/orac-benchmark/internal/report"
	"github.com/axion-project/orac-benchmark/internal/scheduler"
	"github.com/axion-project/orac-benchmark/internal/sysinfo"
)

// Options configure one suite run
type Options struct {
	// Mode selects the benchmarks to run: "all" or a registered name
	Mode string

	// OutputPath is the durable report location
	OutputPath string

	// Parallel runs parallel-safe benchmarks concurrently
	Parallel bool

	// MaxParallel bounds wave concurrency (0 uses the executor default)
	MaxParallel int

	// TaskTimeout is the per-benchmark budget (0 uses the executor default)
	TaskTimeout time.Duration

	// ProgressInterval is the progress reporting cadence (0 uses the default)
	ProgressInterval time.Duration
}

// Result is what a finished run leaves behind
type Result struct {
	// Outcome summarizes the execution counts and duration
	Outcome *executor.Outcome

	// Document is the final report document as persisted
	Document *report.Document

	// Path is where the document was written
	Path string
}

// Runner executes suite runs against one benchmark registry.
type Runner struct {
	registry *registry.Registry
}

// NewRunner creates a runner for the given registry
func NewRunner(reg *registry.Registry) *Runner {
	return &Runner{registry: reg}
}

// Run executes one suite run end to end: select benchmarks by mode, compute
// the execution plan, run it, then summarize and finalize the report. A
// benchmark failure is recorded and does not abort the run; the caller
// inspects Result.Outcome for the failure count. Run returns an error only
// for run-level aborts: an unknown mode, cancellation, or a report that
// cannot be persisted.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	startedAt := time.Now()

	selected, err := r.registry.Select(opts.Mode)
	if err != nil {
		return nil, suiteerrors.NewUnknownModeError(opts.Mode, r.registry.Names())
	}

	names := make([]string, len(selected))
	for i, b := range selected {
		names[i] = b.Name
	}
	logger.Op.WithFields(map[string]interface{}{
		"mode":     opts.Mode,
		"selected": names,
		"parallel": opts.Parallel,
		"output":   opts.OutputPath,
	}).Info("suite run starting")
	logger.User.Infof("Selected %d benchmark(s) (mode: %s)", len(selected), opts.Mode)

	sys := sysinfo.Collect(ctx)
	store := report.NewStore(opts.OutputPath, startedAt, sys)
	plan := scheduler.Build(selected, opts.Parallel)

	exec := executor.New(store, r.executorConfig(opts))
	outcome, execErr := exec.Execute(ctx, plan)
	if execErr != nil {
		// Run-level abort: leave the last durably written document as the
		// final observable state, without an end-of-run summary.
		return &Result{Outcome: outcome, Document: store.Snapshot(), Path: store.Path()}, execErr
	}

	logger.User.Benchmark("Generating summary insights")
	endedAt := time.Now()
	summary := report.BuildSummary(store.Snapshot())
	if err := store.Finalize(endedAt, summary); err != nil {
		return &Result{Outcome: outcome, Document: store.Snapshot(), Path: store.Path()}, err
	}
	logger.User.Persistf("Results saved to %s", store.Path())

	return &Result{Outcome: outcome, Document: store.Snapshot(), Path: store.Path()}, nil
}

func (r *Runner) executorConfig(opts Options) *executor.Config {
	cfg := executor.DefaultConfig()
	if opts.MaxParallel > 0 {
		cfg.MaxParallel = opts.MaxParallel
	}
	if opts.TaskTimeout > 0 {
		cfg.TaskTimeout = opts.TaskTimeout
	}
	if opts.ProgressInterval > 0 {
		cfg.ProgressInterval = opts.ProgressInterval
	}
	return cfg
}
