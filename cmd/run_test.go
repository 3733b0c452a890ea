package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axion-project/orac-benchmark/internal/benchmarks"
	"github.com/axion-project/orac-benchmark/internal/logger"
	"github.com/axion-project/orac-benchmark/internal/validation"
)

// resetRunFlags restores the run command's package-level flag state between
// subtests, including cobra's changed markers.
func resetRunFlags(t *testing.T) {
	t.Helper()
	runMode = validation.ModeAll
	runOutput = defaultReportPath
	runParallel = false
	runMaxParallel = 4
	runTaskTimeout = 10 * time.Minute
	runConfigPath = ""
	runForce = false
	runCmd.Flags().Visit(func(f *pflag.Flag) { f.Changed = false })
}

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestValidateRunFlags(t *testing.T) {
	logger.Setup(false, false, false)

	tests := []struct {
		name     string
		mutate   func()
		wantErr  string
		wantMode string
	}{
		{
			name:     "defaults pass",
			mutate:   func() {},
			wantMode: "all",
		},
		{
			name:     "mode is normalized",
			mutate:   func() { runMode = "  MEMORY " },
			wantMode: "memory",
		},
		{
			name:    "unknown mode",
			mutate:  func() { runMode = "turbo" },
			wantErr: "VALIDATION-001",
		},
		{
			name:    "max-parallel too low",
			mutate:  func() { runMaxParallel = 0 },
			wantErr: "VALIDATION-002",
		},
		{
			name:    "max-parallel too high",
			mutate:  func() { runMaxParallel = 33 },
			wantErr: "VALIDATION-002",
		},
		{
			name:    "zero task-timeout",
			mutate:  func() { runTaskTimeout = 0 },
			wantErr: "VALIDATION-002",
		},
		{
			name:    "blank output path",
			mutate:  func() { runOutput = "   " },
			wantErr: "VALIDATION-002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetRunFlags(t)
			tt.mutate()

			err := validateRunFlags(runCmd, nil)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, runMode)
		})
	}
}

func TestResolveRunOptions(t *testing.T) {
	logger.Setup(false, false, false)

	t.Run("no config file keeps flag values", func(t *testing.T) {
		resetRunFlags(t)

		opts, benchCfg, err := resolveRunOptions(runCmd)
		require.NoError(t, err)
		assert.Equal(t, validation.ModeAll, opts.Mode)
		assert.Equal(t, defaultReportPath, opts.OutputPath)
		assert.False(t, opts.Parallel)
		assert.Equal(t, 4, opts.MaxParallel)
		assert.Equal(t, 10*time.Minute, opts.TaskTimeout)
		assert.Equal(t, benchmarks.DefaultConfig(), benchCfg)
	})

	t.Run("file values fill unset flags", func(t *testing.T) {
		resetRunFlags(t)
		runConfigPath = writeConfigFile(t,
			"mode: latency\noutput: out.json\nparallel: true\nmax_parallel: 8\ntask_timeout: 2m\n")

		opts, _, err := resolveRunOptions(runCmd)
		require.NoError(t, err)
		assert.Equal(t, "latency", opts.Mode)
		assert.Equal(t, "out.json", opts.OutputPath)
		assert.True(t, opts.Parallel)
		assert.Equal(t, 8, opts.MaxParallel)
		assert.Equal(t, 2*time.Minute, opts.TaskTimeout)
	})

	t.Run("explicit flags beat file values", func(t *testing.T) {
		resetRunFlags(t)
		require.NoError(t, runCmd.Flags().Set("mode", "memory"))
		require.NoError(t, runCmd.Flags().Set("max-parallel", "2"))
		runConfigPath = writeConfigFile(t, "mode: latency\nmax_parallel: 8\n")

		opts, _, err := resolveRunOptions(runCmd)
		require.NoError(t, err)
		assert.Equal(t, "memory", opts.Mode)
		assert.Equal(t, 2, opts.MaxParallel)
	})

	t.Run("out-of-range file value is rejected", func(t *testing.T) {
		resetRunFlags(t)
		runConfigPath = writeConfigFile(t, "max_parallel: 99\n")

		_, _, err := resolveRunOptions(runCmd)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CONFIGURATION-001")
	})

	t.Run("unknown file key is rejected", func(t *testing.T) {
		resetRunFlags(t)
		runConfigPath = writeConfigFile(t, "mod: latency\n")

		_, _, err := resolveRunOptions(runCmd)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CONFIGURATION-001")
	})

	t.Run("missing config file is rejected", func(t *testing.T) {
		resetRunFlags(t)
		runConfigPath = filepath.Join(t.TempDir(), "absent.yaml")

		_, _, err := resolveRunOptions(runCmd)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CONFIGURATION-001")
	})

	t.Run("benchmark tunables flow through", func(t *testing.T) {
		resetRunFlags(t)
		runConfigPath = writeConfigFile(t, "benchmarks:\n  memory:\n    total_mb: 32\n")

		_, benchCfg, err := resolveRunOptions(runCmd)
		require.NoError(t, err)
		assert.Equal(t, 32, benchCfg.Memory.TotalMB)
	})
}

func TestValidateWatchFlags(t *testing.T) {
	logger.Setup(false, false, false)

	reset := func() {
		watchOutput = defaultReportPath
		watchInterval = 200 * time.Millisecond
		watchUntilComplete = true
	}

	t.Run("defaults pass", func(t *testing.T) {
		reset()
		assert.NoError(t, validateWatchFlags(watchCmd, nil))
	})

	t.Run("interval below floor", func(t *testing.T) {
		reset()
		watchInterval = time.Millisecond
		err := validateWatchFlags(watchCmd, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "VALIDATION-002")
	})

	t.Run("blank output path", func(t *testing.T) {
		reset()
		watchOutput = ""
		err := validateWatchFlags(watchCmd, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "VALIDATION-002")
	})
}
