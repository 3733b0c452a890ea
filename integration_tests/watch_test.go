package integration

import (
	"bytes"
	"context"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axion-project/orac-benchmark/integration_tests/internal/testutil"
)

func TestWatchStreamsRunProgress(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	workDir, cleanup := testutil.SetupReportWorkspace(t)
	defer cleanup()

	cfgPath := testutil.WriteSmallSuiteConfig(t, workDir)
	reportPath := filepath.Join(workDir, "report.json")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	// Start the monitor before the report exists; it must attach to the
	// directory and pick the file up when the run creates it.
	watch := exec.CommandContext(ctx, testutil.GetBenchBinaryPath(),
		"watch", "--output", reportPath, "--interval", "50ms")
	var watchOut bytes.Buffer
	watch.Stdout = &watchOut
	watch.Stderr = &watchOut
	require.NoError(t, watch.Start())

	watchDone := make(chan error, 1)
	go func() {
		watchDone <- watch.Wait()
	}()

	// Give the monitor a moment to attach, then run the suite. Even if the
	// run wins the race, the monitor catches up from the file on attach.
	time.Sleep(500 * time.Millisecond)

	out, err := runBench(ctx, t, "", "run", "--config", cfgPath, "--output", reportPath)
	require.NoError(t, err, "run command failed:\n%s", out)

	// The monitor exits on its own once the report gains its summary.
	select {
	case err := <-watchDone:
		require.NoError(t, err, "watch command failed:\n%s", watchOut.String())
	case <-time.After(30 * time.Second):
		_ = watch.Process.Kill()
		t.Fatalf("watch did not exit after the run completed; output so far:\n%s", watchOut.String())
	}

	output := watchOut.String()
	for _, name := range []string{"memory", "latency", "security", "energy", "scaling"} {
		assert.Contains(t, output, name+" completed")
	}
	assert.Contains(t, output, "Suite complete")
	assert.Contains(t, output, "Report complete.")
}
