// Package executor runs an execution plan: the concurrent wave under a
// parallelism bound, then the sequential tail one benchmark at a time.
package executor

import (
	"context"
	"fmt"
	"runtime/debug"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	suiteerrors "github.com/axion-project/orac-benchmark/internal/errors"
	"github.com/axion-project/orac-benchmark/internal/logger"
	"github.com/axion-project/orac-benchmark/internal/progress"
	"github.com/axion-project/orac-benchmark/internal/registry"
	"github.com/axion-project/orac-benchmark/internal/report"
	"github.com/axion-project/orac-benchmark/internal/scheduler"
)

// Config contains configuration for the plan executor
type Config struct {
	// MaxParallel is the maximum number of benchmarks to run concurrently
	// during the wave
	MaxParallel int

	// TaskTimeout is the time budget for a single benchmark
	TaskTimeout time.Duration

	// ProgressInterval is how often to report execution progress
	ProgressInterval time.Duration
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		MaxParallel:      4,
		TaskTimeout:      10 * time.Minute,
		ProgressInterval: 5 * time.Second,
	}
}

// Outcome contains the results of a plan execution
type Outcome struct {
	// Total is the number of benchmarks the plan contained
	Total int

	// Completed is the number of benchmarks that produced a result
	Completed int

	// Failed is the number of benchmarks that ended in an error
	Failed int

	// Duration is the total wall-clock time of the execution
	Duration time.Duration

	// FirstError is the first benchmark failure encountered, if any
	FirstError error
}

// Success reports whether every benchmark in the plan produced a result.
func (o *Outcome) Success() bool {
	return o.Failed == 0
}

// event is one benchmark completion, delivered to the collector goroutine.
type event struct {
	name        string
	result      interface{}
	err         error
	timedOut    bool
	panicked    bool
	completedAt time.Time
	duration    time.Duration
}

// Executor drives a plan to completion and records every completion in the
// result store. Workers never touch the store directly: completions travel
// over a channel to a single collector goroutine that owns all store writes,
// so concurrent wave members cannot interleave durable output.
type Executor struct {
	config *Config
	store  *report.Store

	mu        sync.Mutex
	phase     progress.Phase
	running   map[string]struct{}
	completed int
	failed    int
	firstErr  error
}

// New creates an executor writing completions to the given store
func New(store *report.Store, config *Config) *Executor {
	if config == nil {
		config = DefaultConfig()
	}

	return &Executor{
		config:  config,
		store:   store,
		running: make(map[string]struct{}),
	}
}

// Execute runs the plan to completion. Wave members run concurrently,
// bounded by MaxParallel; the tail starts only after the whole wave has
// finished and then runs strictly in plan order. A benchmark failure is
// recorded and the run continues; a failed store write aborts the run,
// since results that cannot be persisted defeat the point of the suite.
//
// The returned error reports run-level aborts (cancellation, persistence
// failure). Per-benchmark failures are reported through the Outcome.
func (e *Executor) Execute(ctx context.Context, plan scheduler.Plan) (*Outcome, error) {
	started := time.Now()
	runID := uuid.NewString()

	if plan.Empty() {
		logger.Op.WithFields(map[string]interface{}{
			"run_id": runID,
		}).Info("empty execution plan, nothing to run")
		return e.outcome(plan, started), nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger.Op.WithFields(map[string]interface{}{
		"run_id":       runID,
		"wave":         plan.ParallelNames(),
		"tail":         plan.SequentialNames(),
		"max_parallel": e.config.MaxParallel,
		"task_timeout": e.config.TaskTimeout.String(),
	}).Info("executing benchmark plan")

	logger.User.Infof("Executing %d benchmarks (max %d parallel)", plan.Total(), e.config.MaxParallel)

	// The collector is the only goroutine that writes to the store. After a
	// persistence failure it cancels the run and drains remaining events
	// without recording them.
	events := make(chan event)
	collectorDone := make(chan struct{})
	var persistErr error
	go func() {
		defer close(collectorDone)
		for ev := range events {
			if persistErr != nil {
				continue
			}
			if err := e.collect(ev); err != nil {
				persistErr = err
				cancel()
			}
		}
	}()

	finished := make(chan struct{})
	go e.logProgress(plan.Total(), finished)

	var runErr error

	if len(plan.Parallel) > 0 {
		e.setPhase(progress.PhaseWave)
		g := new(errgroup.Group)
		g.SetLimit(e.config.MaxParallel)
		for _, b := range plan.Parallel {
			b := b
			g.Go(func() error {
				return e.runOne(runCtx, b, events)
			})
		}
		runErr = g.Wait()
	}

	if runErr == nil && len(plan.Sequential) > 0 {
		e.setPhase(progress.PhaseTail)
		for _, b := range plan.Sequential {
			if err := e.runOne(runCtx, b, events); err != nil {
				runErr = err
				break
			}
		}
	}

	close(events)
	<-collectorDone
	close(finished)

	if runErr == nil {
		runErr = ctx.Err()
	}

	out := e.outcome(plan, started)
	e.logFinal(out)

	if persistErr != nil {
		return out, persistErr
	}
	return out, runErr
}

// runOne executes a single benchmark and delivers its completion event.
// The returned error reports run-level cancellation before the benchmark
// started; once started, failure travels inside the event so that wave
// siblings keep running and the completion is still recorded.
func (e *Executor) runOne(ctx context.Context, b registry.Benchmark, events chan<- event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.setRunning(b.Name)
	logger.User.Infof("Starting benchmark: %s", b.Name)

	taskCtx, cancel := context.WithTimeout(ctx, e.config.TaskTimeout)
	start := time.Now()
	result, err, panicked := e.invoke(taskCtx, b)
	completedAt := time.Now()
	timedOut := taskCtx.Err() == context.DeadlineExceeded
	cancel()

	duration := completedAt.Sub(start)
	if err != nil {
		logger.User.Errorf("Benchmark failed: %s - %v", b.Name, err)
	} else {
		logger.User.Successf("Benchmark completed: %s (%v)", b.Name, duration.Round(time.Millisecond))
	}

	// The collector drains the channel until it is closed, and it is closed
	// only after every runner has returned, so this send cannot block
	// indefinitely.
	events <- event{
		name:        b.Name,
		result:      result,
		err:         err,
		timedOut:    timedOut,
		panicked:    panicked,
		completedAt: completedAt,
		duration:    duration,
	}
	return nil
}

// invoke runs the benchmark's work function, converting a panic into an
// ordinary failure so one broken benchmark cannot take down the suite.
func (e *Executor) invoke(ctx context.Context, b registry.Benchmark) (result interface{}, err error, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Op.WithFields(map[string]interface{}{
				"benchmark": b.Name,
				"panic":     r,
				"stack":     string(debug.Stack()),
			}).Error("benchmark panicked")
			result = nil
			err = fmt.Errorf("panic: %v", r)
			panicked = true
		}
	}()

	result, err = b.Work(ctx)
	return result, err, false
}

// collect updates the run counters and records the completion. Called only
// from the collector goroutine.
func (e *Executor) collect(ev event) error {
	e.mu.Lock()
	delete(e.running, ev.name)
	if ev.err != nil {
		e.failed++
		if e.firstErr == nil {
			e.firstErr = e.wrapFailure(ev)
		}
	} else {
		e.completed++
	}
	e.mu.Unlock()

	logger.Op.WithFields(map[string]interface{}{
		"benchmark": ev.name,
		"duration":  ev.duration.String(),
		"failed":    ev.err != nil,
	}).Debug("benchmark finished")

	if ev.err != nil {
		return e.store.RecordFailure(ev.name, ev.err, ev.completedAt)
	}
	return e.store.Record(ev.name, ev.result, ev.completedAt)
}

func (e *Executor) wrapFailure(ev event) error {
	switch {
	case ev.panicked:
		return suiteerrors.NewBenchmarkPanicError(ev.name, ev.err)
	case ev.timedOut:
		return suiteerrors.NewBenchmarkTimeoutError(ev.name, e.config.TaskTimeout.String()).
			WithOriginalError(ev.err)
	default:
		return suiteerrors.NewBenchmarkFailedError(ev.name, ev.err)
	}
}

func (e *Executor) setRunning(name string) {
	e.mu.Lock()
	e.running[name] = struct{}{}
	e.mu.Unlock()
}

func (e *Executor) setPhase(phase progress.Phase) {
	e.mu.Lock()
	e.phase = phase
	e.mu.Unlock()
}

// GetProgress returns the number of finished benchmarks so far
func (e *Executor) GetProgress() (finished, failed int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.completed + e.failed, e.failed
}

func (e *Executor) outcome(plan scheduler.Plan, started time.Time) *Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	return &Outcome{
		Total:      plan.Total(),
		Completed:  e.completed,
		Failed:     e.failed,
		Duration:   time.Since(started),
		FirstError: e.firstErr,
	}
}

// logProgress provides periodic progress updates while the plan runs
func (e *Executor) logProgress(total int, finished <-chan struct{}) {
	reporter := progress.NewReporter(e.config.ProgressInterval)
	ticker := time.NewTicker(e.config.ProgressInterval)
	defer ticker.Stop()

	for {
		select {
		case <-finished:
			return
		case <-ticker.C:
			logger.User.Info(reporter.Report(e.snapshot(total, reporter.Elapsed())))
		}
	}
}

// snapshot captures current progress for reporting
func (e *Executor) snapshot(total int, elapsed time.Duration) progress.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	running := make([]string, 0, len(e.running))
	for name := range e.running {
		running = append(running, name)
	}
	sort.Strings(running)

	return progress.Snapshot{
		CurrentPhase:   e.phase,
		TotalTasks:     total,
		CompletedTasks: e.completed + e.failed,
		FailedTasks:    e.failed,
		Running:        running,
		ElapsedTime:    elapsed,
	}
}

// logFinal logs the execution summary
func (e *Executor) logFinal(out *Outcome) {
	if out.Failed == 0 {
		logger.User.Successf("Execution completed: %d/%d benchmarks successful in %v",
			out.Completed, out.Total, out.Duration.Round(time.Millisecond))
		return
	}
	logger.User.Errorf("Execution completed: %d successful, %d failed in %v",
		out.Completed, out.Failed, out.Duration.Round(time.Millisecond))
}
