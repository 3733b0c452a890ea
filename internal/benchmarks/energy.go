package benchmarks

import (
	"context"
	"time"

	"github.com/axion-project/orac-benchmark/internal/registry"
	"github.com/axion-project/orac-benchmark/internal/utils"
)

// EnergyResult reports the measured duty cycle of a fixed busy/idle
// workload, a proxy for energy behavior under bursty load.
type EnergyResult struct {
	Cycles          int     `json:"cycles"`
	BusyMillis      float64 `json:"busy_ms"`
	IdleMillis      float64 `json:"idle_ms"`
	DutyCycle       float64 `json:"duty_cycle"`
	EfficiencyScore float64 `json:"efficiency_score"`
	DurationMillis  float64 `json:"duration_ms"`
}

// Energy returns a work function that alternates busy spinning and idle
// sleeping for the configured windows, then reports how much of the wall
// clock was actually spent busy. Scheduling overhead pushes the measured
// duty cycle away from the configured ratio; that drift is the signal.
func Energy(cfg EnergyConfig) registry.WorkFunc {
	return func(ctx context.Context) (interface{}, error) {
		busyWindow := time.Duration(cfg.BusyWindowMs) * time.Millisecond
		idleWindow := time.Duration(cfg.IdleWindowMs) * time.Millisecond

		var busy, idle time.Duration
		start := time.Now()

		for cycle := 0; cycle < cfg.Cycles; cycle++ {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			busyStart := time.Now()
			spin := uint64(0)
			for time.Since(busyStart) < busyWindow {
				spin++
			}
			busy += time.Since(busyStart)

			idleStart := time.Now()
			timer := time.NewTimer(idleWindow)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			}
			idle += time.Since(idleStart)
			_ = spin
		}

		elapsed := time.Since(start)
		if elapsed <= 0 {
			elapsed = time.Microsecond
		}

		dutyCycle := 0.0
		if total := busy + idle; total > 0 {
			dutyCycle = float64(busy) / float64(total)
		}

		return EnergyResult{
			Cycles:          cfg.Cycles,
			BusyMillis:      utils.Round2(float64(busy.Microseconds()) / 1000),
			IdleMillis:      utils.Round2(float64(idle.Microseconds()) / 1000),
			DutyCycle:       utils.Round2(dutyCycle),
			EfficiencyScore: utils.Round2(100 * (1 - dutyCycle)),
			DurationMillis:  utils.Round2(float64(elapsed.Microseconds()) / 1000),
		}, nil
	}
}
