package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupReportWorkspace creates a scratch directory for a test's report files
// under tmp_integration_tests/ and returns the directory plus a cleanup
// function. The cleanup respects KEEP_REPORTS so a failing run's output can
// be inspected afterwards.
func SetupReportWorkspace(t *testing.T) (string, func()) {
	t.Helper()

	root, err := filepath.Abs(filepath.Join("..", "tmp_integration_tests"))
	require.NoError(t, err, "failed to resolve workspace root")

	randomBytes := make([]byte, 4)
	_, err = rand.Read(randomBytes)
	require.NoError(t, err, "failed to generate random bytes")
	randomSuffix := hex.EncodeToString(randomBytes)

	testName := strings.ReplaceAll(t.Name(), "/", "_")
	workspaceDir := filepath.Join(root, fmt.Sprintf("%s-%s", testName, randomSuffix))
	require.NoError(t, os.MkdirAll(workspaceDir, 0755), "failed to create test workspace directory")

	cleanup := func() {
		if os.Getenv("KEEP_REPORTS") == "true" {
			t.Logf("KEEP_REPORTS is set to true")
			t.Logf("Reports preserved in: %s", workspaceDir)
			return
		}
		if err := os.RemoveAll(workspaceDir); err != nil {
			t.Logf("Warning: failed to clean up workspace directory %s: %v", workspaceDir, err)
		}
	}

	return workspaceDir, cleanup
}

// WriteSmallSuiteConfig writes a configuration file with shrunk workloads so
// integration runs finish quickly, and returns its path.
func WriteSmallSuiteConfig(t *testing.T, dir string) string {
	t.Helper()

	body := `benchmarks:
  memory:
    total_mb: 8
    block_kb: 64
  latency:
    samples: 200
  security:
    payload_kb: 64
    rounds: 20
  energy:
    cycles: 4
    busy_window_ms: 2
    idle_window_ms: 2
  scaling:
    work_items: 64
    max_workers: 2
`
	path := filepath.Join(dir, "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644), "failed to write suite config")
	return path
}
