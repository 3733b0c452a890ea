// Package report owns the suite result document: its in-memory form, its
// serialization, its durable persistence, and the derived summary.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/axion-project/orac-benchmark/internal/sysinfo"
)

// Version identifies the report document format.
const Version = "2.0"

// Reserved top-level keys; benchmark names must not collide with them.
const (
	metadataKey = "metadata"
	summaryKey  = "summary"
)

// Metadata describes one suite run. EndTime and TotalDuration are set only
// when the run finishes.
type Metadata struct {
	StartTime     string       `json:"start_time"`
	Version       string       `json:"version"`
	SystemInfo    sysinfo.Info `json:"system_info"`
	EndTime       string       `json:"end_time,omitempty"`
	TotalDuration string       `json:"total_duration,omitempty"`
}

// Entry is one completed benchmark. Exactly one of Result or Error is set.
type Entry struct {
	Name        string      `json:"-"`
	Result      interface{} `json:"result,omitempty"`
	Error       string      `json:"error,omitempty"`
	CompletedAt string      `json:"completed_at"`
}

// Failed reports whether the entry records a benchmark failure.
func (e Entry) Failed() bool {
	return e.Error != ""
}

// Summary is the aggregate block appended when the suite completes.
type Summary struct {
	KeyInsights      []string `json:"key_insights"`
	BenchmarkCount   int      `json:"benchmark_count"`
	PerformanceGrade string   `json:"performance_grade"`
}

// Document is the full suite result. Top-level serialization order is fixed:
// metadata first, then one key per benchmark in completion order, then the
// summary once present. Document is not safe for concurrent use; Store
// provides the synchronized view.
type Document struct {
	Metadata Metadata
	Summary  *Summary

	entries []Entry
	index   map[string]int
}

// NewDocument creates an empty document with the given run metadata.
func NewDocument(meta Metadata) *Document {
	return &Document{
		Metadata: meta,
		index:    make(map[string]int),
	}
}

// Append records a benchmark entry. A repeated name replaces the earlier
// entry in place, keeping its original position. Names colliding with the
// reserved document keys are rejected.
func (d *Document) Append(e Entry) error {
	if e.Name == "" {
		return fmt.Errorf("entry name cannot be empty")
	}
	if e.Name == metadataKey || e.Name == summaryKey {
		return fmt.Errorf("entry name %s collides with a reserved document key", e.Name)
	}
	if idx, exists := d.index[e.Name]; exists {
		d.entries[idx] = e
		return nil
	}
	d.index[e.Name] = len(d.entries)
	d.entries = append(d.entries, e)
	return nil
}

// Get returns the entry for a benchmark name.
func (d *Document) Get(name string) (Entry, bool) {
	idx, ok := d.index[name]
	if !ok {
		return Entry{}, false
	}
	return d.entries[idx], true
}

// Entries returns the entries in completion order.
func (d *Document) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Names returns the benchmark names in completion order.
func (d *Document) Names() []string {
	names := make([]string, len(d.entries))
	for i, e := range d.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of benchmark entries.
func (d *Document) Len() int {
	return len(d.entries)
}

// FailureCount returns the number of entries recording a failure.
func (d *Document) FailureCount() int {
	n := 0
	for _, e := range d.entries {
		if e.Failed() {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the document.
func (d *Document) Clone() *Document {
	out := NewDocument(d.Metadata)
	out.entries = d.Entries()
	for i, e := range out.entries {
		out.index[e.Name] = i
	}
	if d.Summary != nil {
		s := *d.Summary
		out.Summary = &s
	}
	return out
}

// MarshalJSON serializes the document with its fixed top-level key order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	write := func(key string, value interface{}) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to serialize %s: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}

	if err := write(metadataKey, d.Metadata); err != nil {
		return nil, err
	}
	for _, e := range d.entries {
		if err := write(e.Name, e); err != nil {
			return nil, err
		}
	}
	if d.Summary != nil {
		if err := write(summaryKey, d.Summary); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Timestamp renders a time in the document's timestamp format.
func Timestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
