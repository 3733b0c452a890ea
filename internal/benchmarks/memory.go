package benchmarks

import (
	"context"
	"runtime"
	"time"

	"github.com/axion-project/orac-benchmark/internal/registry"
	"github.com/axion-project/orac-benchmark/internal/utils"
)

// MemoryResult reports allocation throughput and heap behavior.
type MemoryResult struct {
	AllocatedMB    int     `json:"allocated_mb"`
	BlockKB        int     `json:"block_kb"`
	ThroughputMBs  float64 `json:"throughput_mb_s"`
	GCCycles       uint32  `json:"gc_cycles"`
	HeapAllocMB    float64 `json:"heap_alloc_mb"`
	DurationMillis float64 `json:"duration_ms"`
}

// Memory returns a work function that allocates blocks until the configured
// total is reached, measuring sustained allocation throughput.
func Memory(cfg MemoryConfig) registry.WorkFunc {
	return func(ctx context.Context) (interface{}, error) {
		blockSize := cfg.BlockKB * 1024
		totalBytes := cfg.TotalMB * 1024 * 1024

		var gcBefore runtime.MemStats
		runtime.ReadMemStats(&gcBefore)

		// Retain a bounded window of blocks so allocations are real work
		// for the collector without growing the heap unboundedly.
		window := make([][]byte, 0, 64)
		allocated := 0
		start := time.Now()

		for allocated < totalBytes {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			block := make([]byte, blockSize)
			block[0] = 1
			block[len(block)-1] = 1

			window = append(window, block)
			if len(window) == cap(window) {
				window = window[:0]
			}
			allocated += blockSize
		}

		elapsed := time.Since(start)
		if elapsed <= 0 {
			elapsed = time.Microsecond
		}

		var gcAfter runtime.MemStats
		runtime.ReadMemStats(&gcAfter)

		return MemoryResult{
			AllocatedMB:    cfg.TotalMB,
			BlockKB:        cfg.BlockKB,
			ThroughputMBs:  utils.Round2(float64(cfg.TotalMB) / elapsed.Seconds()),
			GCCycles:       gcAfter.NumGC - gcBefore.NumGC,
			HeapAllocMB:    utils.Round2(float64(gcAfter.HeapAlloc) / (1 << 20)),
			DurationMillis: utils.Round2(float64(elapsed.Microseconds()) / 1000),
		}, nil
	}
}
