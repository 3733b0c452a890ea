package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axion-project/orac-benchmark/internal/sysinfo"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.json")
	return NewStore(path, time.Now(), sysinfo.Info{Platform: "linux", CPUCount: 4, GoVersion: "go1.23.0"})
}

func readReport(t *testing.T, path string) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &parsed), "report on disk must always be valid JSON")
	return parsed
}

func TestRecordPersistsImmediately(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Record("memory", map[string]interface{}{"throughput": 1.5}, time.Now()))

	parsed := readReport(t, store.Path())
	assert.Contains(t, parsed, "metadata")
	assert.Contains(t, parsed, "memory")
	assert.NotContains(t, parsed, "summary", "summary must be absent before finalization")

	meta := parsed["metadata"].(map[string]interface{})
	assert.Equal(t, "2.0", meta["version"])
	assert.NotEmpty(t, meta["start_time"])
	assert.NotContains(t, meta, "end_time")
}

func TestRecordFailurePersistsErrorEntry(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.RecordFailure("energy", fmt.Errorf("probe timed out"), time.Now()))

	parsed := readReport(t, store.Path())
	entry := parsed["energy"].(map[string]interface{})
	assert.Equal(t, "probe timed out", entry["error"])
	assert.NotContains(t, entry, "result")
	assert.NotEmpty(t, entry["completed_at"])
}

func TestConcurrentRecordsAreAllRetained(t *testing.T) {
	store := newTestStore(t)

	const writers = 8
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(n int) {
			defer wg.Done()
			name := fmt.Sprintf("bench-%d", n)
			assert.NoError(t, store.Record(name, n, time.Now()))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, writers, store.Len())

	parsed := readReport(t, store.Path())
	for i := 0; i < writers; i++ {
		assert.Contains(t, parsed, fmt.Sprintf("bench-%d", i))
	}
}

func TestFinalizeStampsCompletion(t *testing.T) {
	started := time.Now().Add(-2 * time.Second)
	path := filepath.Join(t.TempDir(), "report.json")
	store := NewStore(path, started, sysinfo.Info{Platform: "linux"})

	require.NoError(t, store.Record("memory", "ok", time.Now()))
	require.NoError(t, store.Finalize(time.Now(), Summary{
		KeyInsights:      []string{},
		BenchmarkCount:   1,
		PerformanceGrade: "B+",
	}))

	parsed := readReport(t, path)
	meta := parsed["metadata"].(map[string]interface{})
	assert.NotEmpty(t, meta["end_time"])
	assert.NotEmpty(t, meta["total_duration"])

	summary := parsed["summary"].(map[string]interface{})
	assert.Equal(t, float64(1), summary["benchmark_count"])
	assert.Equal(t, "B+", summary["performance_grade"])
	insights, ok := summary["key_insights"].([]interface{})
	require.True(t, ok, "key_insights must serialize as a list even when empty")
	assert.Empty(t, insights)
}

func TestSerializeIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Record("latency", map[string]float64{"p99": 2.5}, time.Now()))

	first, err := store.Serialize()
	require.NoError(t, err)
	second, err := store.Serialize()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAtomicWriteLeavesNoTempFiles(t *testing.T) {
	store := newTestStore(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(fmt.Sprintf("bench-%d", i), i, time.Now()))
	}

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1, "only the report file should remain")
	assert.Equal(t, filepath.Base(store.Path()), entries[0].Name())
}

func TestPersistCreatesMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "report.json")
	store := NewStore(path, time.Now(), sysinfo.Info{})

	require.NoError(t, store.Persist())

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSnapshotIsDetached(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Record("memory", 1, time.Now()))

	snap := store.Snapshot()
	require.NoError(t, snap.Append(Entry{Name: "latency", Result: 2, CompletedAt: Timestamp(time.Now())}))

	assert.Equal(t, 1, store.Len(), "mutating a snapshot must not touch the store")
	assert.Equal(t, 2, snap.Len())
}

func TestRecordRejectsReservedName(t *testing.T) {
	store := newTestStore(t)
	err := store.Record("metadata", 1, time.Now())
	assert.Error(t, err)
}
