package benchmarks

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/axion-project/orac-benchmark/internal/registry"
	"github.com/axion-project/orac-benchmark/internal/utils"
)

// ScalingResult reports parallel speedup of a CPU-bound workload.
type ScalingResult struct {
	WorkItems      int     `json:"work_items"`
	Workers        int     `json:"workers"`
	BaselineMillis float64 `json:"baseline_ms"`
	ParallelMillis float64 `json:"parallel_ms"`
	Speedup        float64 `json:"speedup"`
	Efficiency     float64 `json:"efficiency"`
	DurationMillis float64 `json:"duration_ms"`
}

// Scaling returns a work function that times the same CPU-bound item set
// twice, once on a single worker and once spread across a worker pool, and
// reports the observed speedup.
func Scaling(cfg ScalingConfig) registry.WorkFunc {
	return func(ctx context.Context) (interface{}, error) {
		workers := cfg.MaxWorkers
		if n := runtime.NumCPU(); workers > n {
			workers = n
		}
		if workers < 1 {
			workers = 1
		}

		start := time.Now()

		baseline, err := runPass(ctx, cfg.WorkItems, 1)
		if err != nil {
			return nil, err
		}
		parallel, err := runPass(ctx, cfg.WorkItems, workers)
		if err != nil {
			return nil, err
		}

		elapsed := time.Since(start)
		if parallel <= 0 {
			parallel = time.Microsecond
		}

		speedup := float64(baseline) / float64(parallel)

		return ScalingResult{
			WorkItems:      cfg.WorkItems,
			Workers:        workers,
			BaselineMillis: utils.Round2(float64(baseline.Microseconds()) / 1000),
			ParallelMillis: utils.Round2(float64(parallel.Microseconds()) / 1000),
			Speedup:        utils.Round2(speedup),
			Efficiency:     utils.Round2(speedup / float64(workers)),
			DurationMillis: utils.Round2(float64(elapsed.Microseconds()) / 1000),
		}, nil
	}
}

// runPass executes items CPU-bound work items across the given number of
// workers and returns the wall time for the whole pass.
func runPass(ctx context.Context, items, workers int) (time.Duration, error) {
	work := make(chan int)

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for item := range work {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				crunch(item)
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(work)
		for i := 0; i < items; i++ {
			select {
			case work <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return time.Since(start), nil
}

// crunch is one fixed-cost CPU-bound item: repeated hashing over a seed.
func crunch(seed int) [32]byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(seed))
	digest := sha256.Sum256(buf[:])
	for i := 0; i < 512; i++ {
		digest = sha256.Sum256(digest[:])
	}
	return digest
}
