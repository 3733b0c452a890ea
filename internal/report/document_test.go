package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axion-project/orac-benchmark/internal/sysinfo"
)

func testMetadata() Metadata {
	return Metadata{
		StartTime: Timestamp(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
		Version:   Version,
		SystemInfo: sysinfo.Info{
			Platform:  "linux",
			CPUCount:  8,
			MemoryGB:  16.0,
			GoVersion: "go1.23.0",
		},
	}
}

func TestDocumentTopLevelKeyOrder(t *testing.T) {
	doc := NewDocument(testMetadata())
	now := time.Now()

	require.NoError(t, doc.Append(Entry{Name: "latency", Result: map[string]int{"p50": 1}, CompletedAt: Timestamp(now)}))
	require.NoError(t, doc.Append(Entry{Name: "memory", Result: "ok", CompletedAt: Timestamp(now)}))
	doc.Summary = &Summary{KeyInsights: []string{}, BenchmarkCount: 2, PerformanceGrade: "B+"}

	data, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	out := string(data)

	metaIdx := strings.Index(out, `"metadata"`)
	latencyIdx := strings.Index(out, `"latency"`)
	memoryIdx := strings.Index(out, `"memory"`)
	summaryIdx := strings.Index(out, `"summary"`)

	require.NotEqual(t, -1, metaIdx)
	require.NotEqual(t, -1, latencyIdx)
	require.NotEqual(t, -1, memoryIdx)
	require.NotEqual(t, -1, summaryIdx)

	assert.Less(t, metaIdx, latencyIdx, "metadata must come first")
	assert.Less(t, latencyIdx, memoryIdx, "entries must appear in completion order")
	assert.Less(t, memoryIdx, summaryIdx, "summary must come last")
}

func TestDocumentSerializationIsIdempotent(t *testing.T) {
	doc := NewDocument(testMetadata())
	require.NoError(t, doc.Append(Entry{
		Name:        "security",
		Result:      map[string]interface{}{"hash_rate": 123.45},
		CompletedAt: Timestamp(time.Now()),
	}))

	first, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	second, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)

	assert.Equal(t, first, second, "repeated serialization must be byte-identical")
}

func TestDocumentOmitsPendingCompletionFields(t *testing.T) {
	doc := NewDocument(testMetadata())

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	out := string(data)

	assert.NotContains(t, out, "end_time")
	assert.NotContains(t, out, "total_duration")
	assert.NotContains(t, out, `"summary"`)
	assert.Contains(t, out, `"start_time"`)
	assert.Contains(t, out, `"version":"2.0"`)
}

func TestDocumentRoundTripsAsPlainJSON(t *testing.T) {
	doc := NewDocument(testMetadata())
	require.NoError(t, doc.Append(Entry{Name: "memory", Result: 42, CompletedAt: Timestamp(time.Now())}))

	data, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Contains(t, parsed, "metadata")
	assert.Contains(t, parsed, "memory")

	entry, ok := parsed["memory"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(42), entry["result"])
	assert.NotEmpty(t, entry["completed_at"])
}

func TestAppendRejectsReservedNames(t *testing.T) {
	doc := NewDocument(testMetadata())

	assert.Error(t, doc.Append(Entry{Name: "metadata", CompletedAt: Timestamp(time.Now())}))
	assert.Error(t, doc.Append(Entry{Name: "summary", CompletedAt: Timestamp(time.Now())}))
	assert.Error(t, doc.Append(Entry{Name: "", CompletedAt: Timestamp(time.Now())}))
	assert.Equal(t, 0, doc.Len())
}

func TestAppendReplacesDuplicateInPlace(t *testing.T) {
	doc := NewDocument(testMetadata())
	now := time.Now()

	require.NoError(t, doc.Append(Entry{Name: "memory", Result: "first", CompletedAt: Timestamp(now)}))
	require.NoError(t, doc.Append(Entry{Name: "latency", Result: "second", CompletedAt: Timestamp(now)}))
	require.NoError(t, doc.Append(Entry{Name: "memory", Result: "replaced", CompletedAt: Timestamp(now)}))

	assert.Equal(t, 2, doc.Len())
	assert.Equal(t, []string{"memory", "latency"}, doc.Names(), "replacement keeps the original position")

	e, ok := doc.Get("memory")
	require.True(t, ok)
	assert.Equal(t, "replaced", e.Result)
}

func TestFailureEntrySerialization(t *testing.T) {
	doc := NewDocument(testMetadata())
	require.NoError(t, doc.Append(Entry{
		Name:        "energy",
		Error:       "sensor unavailable",
		CompletedAt: Timestamp(time.Now()),
	}))

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &parsed))
	entry := parsed["energy"].(map[string]interface{})

	assert.Equal(t, "sensor unavailable", entry["error"])
	assert.NotContains(t, entry, "result")
}

func TestCloneIsIndependent(t *testing.T) {
	doc := NewDocument(testMetadata())
	require.NoError(t, doc.Append(Entry{Name: "memory", Result: 1, CompletedAt: Timestamp(time.Now())}))

	clone := doc.Clone()
	require.NoError(t, clone.Append(Entry{Name: "latency", Result: 2, CompletedAt: Timestamp(time.Now())}))

	assert.Equal(t, 1, doc.Len())
	assert.Equal(t, 2, clone.Len())
}
