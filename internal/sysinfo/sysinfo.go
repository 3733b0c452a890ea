// Package sysinfo probes the host environment for report metadata.
package sysinfo

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/axion-project/orac-benchmark/internal/logger"
	"github.com/axion-project/orac-benchmark/internal/utils"
)

// Info describes the host a suite run executed on.
type Info struct {
	Platform  string  `json:"platform"`
	CPUCount  int     `json:"cpu_count"`
	MemoryGB  float64 `json:"memory_gb"`
	GoVersion string  `json:"go_version"`
}

// Collect gathers host information. Probe failures degrade to runtime
// values rather than failing the suite.
func Collect(ctx context.Context) Info {
	info := Info{
		Platform:  runtime.GOOS,
		CPUCount:  runtime.NumCPU(),
		GoVersion: runtime.Version(),
	}

	if hostInfo, err := host.InfoWithContext(ctx); err == nil && hostInfo.OS != "" {
		info.Platform = hostInfo.OS
	} else if err != nil {
		logger.Op.WithFields(map[string]interface{}{"error": err}).
			Debug("host probe failed, using runtime platform")
	}

	if counts, err := cpu.CountsWithContext(ctx, true); err == nil && counts > 0 {
		info.CPUCount = counts
	} else if err != nil {
		logger.Op.WithFields(map[string]interface{}{"error": err}).
			Debug("cpu probe failed, using runtime count")
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		info.MemoryGB = utils.Round2(float64(vm.Total) / (1 << 30))
	} else {
		logger.Op.WithFields(map[string]interface{}{"error": err}).
			Debug("memory probe failed, reporting zero")
	}

	return info
}
