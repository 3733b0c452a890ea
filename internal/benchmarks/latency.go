package benchmarks

import (
	"context"
	"sort"
	"time"

	"github.com/axion-project/orac-benchmark/internal/registry"
	"github.com/axion-project/orac-benchmark/internal/utils"
)

// LatencyResult reports scheduling round-trip latency percentiles.
type LatencyResult struct {
	Samples        int     `json:"samples"`
	P50Micros      float64 `json:"p50_us"`
	P95Micros      float64 `json:"p95_us"`
	P99Micros      float64 `json:"p99_us"`
	MaxMicros      float64 `json:"max_us"`
	DurationMillis float64 `json:"duration_ms"`
}

// Latency returns a work function that measures goroutine round-trip
// latency: each sample times one message bounced off an echo goroutine
// over unbuffered channels, capturing scheduler hand-off cost.
func Latency(cfg LatencyConfig) registry.WorkFunc {
	return func(ctx context.Context) (interface{}, error) {
		ping := make(chan struct{})
		pong := make(chan struct{})
		done := make(chan struct{})
		defer close(done)

		go func() {
			for {
				select {
				case <-done:
					return
				case <-ping:
					pong <- struct{}{}
				}
			}
		}()

		samples := make([]time.Duration, 0, cfg.Samples)
		start := time.Now()

		for i := 0; i < cfg.Samples; i++ {
			if i%256 == 0 {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				default:
				}
			}

			t0 := time.Now()
			ping <- struct{}{}
			<-pong
			samples = append(samples, time.Since(t0))
		}

		elapsed := time.Since(start)
		sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })

		return LatencyResult{
			Samples:        cfg.Samples,
			P50Micros:      micros(percentile(samples, 0.50)),
			P95Micros:      micros(percentile(samples, 0.95)),
			P99Micros:      micros(percentile(samples, 0.99)),
			MaxMicros:      micros(percentile(samples, 1.0)),
			DurationMillis: utils.Round2(float64(elapsed.Microseconds()) / 1000),
		}, nil
	}
}

// percentile picks from a sorted sample set; q in [0,1].
func percentile(sorted []time.Duration, q float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(q * float64(len(sorted)-1))
	return sorted[idx]
}

func micros(d time.Duration) float64 {
	return utils.Round2(float64(d.Nanoseconds()) / 1000)
}
