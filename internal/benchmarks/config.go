// Package benchmarks implements the built-in benchmark workloads and the
// canonical registry a suite run selects from.
package benchmarks

// Config carries the tuning knobs for every built-in benchmark.
// Zero values are replaced with defaults by Normalize.
type Config struct {
	Memory   MemoryConfig   `yaml:"memory"`
	Latency  LatencyConfig  `yaml:"latency"`
	Security SecurityConfig `yaml:"security"`
	Energy   EnergyConfig   `yaml:"energy"`
	Scaling  ScalingConfig  `yaml:"scaling"`
}

// MemoryConfig tunes the allocation throughput benchmark.
type MemoryConfig struct {
	TotalMB int `yaml:"total_mb"` // total amount to allocate
	BlockKB int `yaml:"block_kb"` // size of each allocation
}

// LatencyConfig tunes the scheduling latency benchmark.
type LatencyConfig struct {
	Samples int `yaml:"samples"` // round-trips to measure
}

// SecurityConfig tunes the hashing throughput benchmark.
type SecurityConfig struct {
	PayloadKB int `yaml:"payload_kb"` // size of the hashed payload
	Rounds    int `yaml:"rounds"`     // chained hashing rounds
}

// EnergyConfig tunes the duty-cycle benchmark.
type EnergyConfig struct {
	Cycles       int `yaml:"cycles"`         // busy/idle cycles to run
	BusyWindowMs int `yaml:"busy_window_ms"` // busy spin per cycle
	IdleWindowMs int `yaml:"idle_window_ms"` // idle sleep per cycle
}

// ScalingConfig tunes the parallel speedup benchmark.
type ScalingConfig struct {
	WorkItems  int `yaml:"work_items"`  // CPU-bound items per pass
	MaxWorkers int `yaml:"max_workers"` // worker count for the parallel pass
}

// DefaultConfig returns the standard workload sizes.
func DefaultConfig() Config {
	return Config{
		Memory:   MemoryConfig{TotalMB: 64, BlockKB: 64},
		Latency:  LatencyConfig{Samples: 2000},
		Security: SecurityConfig{PayloadKB: 256, Rounds: 200},
		Energy:   EnergyConfig{Cycles: 10, BusyWindowMs: 5, IdleWindowMs: 5},
		Scaling:  ScalingConfig{WorkItems: 256, MaxWorkers: 4},
	}
}

// Normalize fills unset knobs with their defaults and returns the result.
func (c Config) Normalize() Config {
	def := DefaultConfig()

	if c.Memory.TotalMB <= 0 {
		c.Memory.TotalMB = def.Memory.TotalMB
	}
	if c.Memory.BlockKB <= 0 {
		c.Memory.BlockKB = def.Memory.BlockKB
	}
	if c.Latency.Samples <= 0 {
		c.Latency.Samples = def.Latency.Samples
	}
	if c.Security.PayloadKB <= 0 {
		c.Security.PayloadKB = def.Security.PayloadKB
	}
	if c.Security.Rounds <= 0 {
		c.Security.Rounds = def.Security.Rounds
	}
	if c.Energy.Cycles <= 0 {
		c.Energy.Cycles = def.Energy.Cycles
	}
	if c.Energy.BusyWindowMs <= 0 {
		c.Energy.BusyWindowMs = def.Energy.BusyWindowMs
	}
	if c.Energy.IdleWindowMs <= 0 {
		c.Energy.IdleWindowMs = def.Energy.IdleWindowMs
	}
	if c.Scaling.WorkItems <= 0 {
		c.Scaling.WorkItems = def.Scaling.WorkItems
	}
	if c.Scaling.MaxWorkers <= 0 {
		c.Scaling.MaxWorkers = def.Scaling.MaxWorkers
	}
	return c
}
