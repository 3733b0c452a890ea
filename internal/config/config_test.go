package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	suiteerrors "github.com/axion-project/orac-benchmark/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
mode: memory
output: out/report.json
parallel: false
max_parallel: 8
task_timeout: 2m30s
benchmarks:
  memory:
    total_mb: 16
    block_kb: 32
  latency:
    samples: 500
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Mode)
	assert.Equal(t, "out/report.json", cfg.Output)
	require.NotNil(t, cfg.Parallel)
	assert.False(t, *cfg.Parallel)
	assert.Equal(t, 8, cfg.MaxParallel)
	assert.Equal(t, 2*time.Minute+30*time.Second, cfg.TaskTimeout.Std())
	assert.Equal(t, 16, cfg.Benchmarks.Memory.TotalMB)
	assert.Equal(t, 500, cfg.Benchmarks.Latency.Samples)
}

func TestLoadPartialConfigLeavesRestUnset(t *testing.T) {
	path := writeConfig(t, "mode: all\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "all", cfg.Mode)
	assert.Empty(t, cfg.Output)
	assert.Nil(t, cfg.Parallel, "unset parallel must stay nil so flags can decide")
	assert.Zero(t, cfg.MaxParallel)
	assert.Zero(t, cfg.TaskTimeout.Std())
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Suite{}, cfg)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "modee: all\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, suiteerrors.IsUserError(err), "config mistakes are user errors")
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := writeConfig(t, "task_timeout: soon\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, "CONFIGURATION-001", suiteerrors.GetErrorCode(err))
}
