// Package monitor tails a suite report file and surfaces its growth in real
// time. It relies on the run side's persistence contract: the report is
// rewritten atomically after every benchmark completion, so each re-read
// observes a complete, valid document.
package monitor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	suiteerrors "github.com/axion-project/orac-benchmark/internal/errors"
	"github.com/axion-project/orac-benchmark/internal/logger"
	"github.com/axion-project/orac-benchmark/internal/report"
)

// Config controls monitor behavior.
type Config struct {
	// Interval is the debounce window between a change notification and the
	// re-read it triggers. A burst of events inside the window collapses
	// into a single read.
	Interval time.Duration

	// UntilComplete stops the monitor once the document gains its summary.
	// When false the monitor keeps watching across runs until cancelled.
	UntilComplete bool
}

// DefaultConfig returns the monitor defaults used by the CLI.
func DefaultConfig() Config {
	return Config{
		Interval:      200 * time.Millisecond,
		UntilComplete: true,
	}
}

// Update describes one observed advance of the report document. Either
// Name/Entry identify a newly completed benchmark, or Summary carries the
// aggregate block the document just gained.
type Update struct {
	Name    string
	Entry   report.Entry
	Summary *report.Summary
}

// UpdateFunc receives updates in document order from a single goroutine.
type UpdateFunc func(Update)

// Monitor watches one report path.
type Monitor struct {
	path   string
	config Config

	runStart    string
	seen        map[string]struct{}
	summarySent bool
}

// New creates a monitor for the report at path. A non-positive interval
// falls back to the default.
func New(path string, config Config) *Monitor {
	if config.Interval <= 0 {
		config.Interval = DefaultConfig().Interval
	}
	return &Monitor{
		path:   path,
		config: config,
		seen:   make(map[string]struct{}),
	}
}

// Run attaches to the report's directory and blocks, delivering updates
// until the document completes (with UntilComplete) or ctx is cancelled.
// It returns the last document observed, which is nil when the report never
// appeared. The report itself may not exist yet; its parent directory must.
func (m *Monitor) Run(ctx context.Context, emit UpdateFunc) (*report.Document, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, suiteerrors.NewWatchSetupError(err)
	}
	defer watcher.Close()

	// Watch the parent directory, not the file: the file is replaced by
	// rename on every completion, and a watch on the old inode would go
	// stale after the first one.
	dir := filepath.Dir(m.path)
	if err := watcher.Add(dir); err != nil {
		return nil, suiteerrors.NewWatchTargetError(m.path, err)
	}

	logger.Op.WithFields(map[string]interface{}{
		"path":     m.path,
		"interval": m.config.Interval.String(),
	}).Debug("report monitor attached")

	// Catch up on whatever the report already holds.
	last, done := m.refresh(emit)
	if done {
		return last, nil
	}

	var timer *time.Timer
	var timerC <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return last, ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return last, suiteerrors.NewWatchSetupError(fmt.Errorf("event stream closed"))
			}
			if !m.concerns(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(m.config.Interval)
				timerC = timer.C
			} else {
				timer.Reset(m.config.Interval)
			}

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return last, suiteerrors.NewWatchSetupError(fmt.Errorf("error stream closed"))
			}
			logger.Op.WithFields(map[string]interface{}{
				"path":  m.path,
				"error": watchErr.Error(),
			}).Warn("watch error, continuing")

		case <-timerC:
			doc, done := m.refresh(emit)
			if doc != nil {
				last = doc
			}
			if done {
				return last, nil
			}
		}
	}
}

// concerns reports whether a filesystem event touches the report path. The
// atomic replace shows up as a Create on the final name, so no op filtering
// is applied; a spurious re-read is deduplicated by the seen set.
func (m *Monitor) concerns(event fsnotify.Event) bool {
	return filepath.Clean(event.Name) == filepath.Clean(m.path)
}

// refresh re-reads the report and delivers anything not yet delivered. A
// failed read is benign: the report may not have been created yet, or was
// observed between the removal and rename of a replace. The monitor stays
// attached and waits for the next change.
func (m *Monitor) refresh(emit UpdateFunc) (*report.Document, bool) {
	doc, err := report.Load(m.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Op.Debugf("report read failed: %v", err)
		}
		return nil, false
	}

	// A changed start time means the file was replaced by a fresh run.
	if doc.Metadata.StartTime != m.runStart {
		m.runStart = doc.Metadata.StartTime
		m.seen = make(map[string]struct{})
		m.summarySent = false
	}

	for _, e := range doc.Entries() {
		if _, delivered := m.seen[e.Name]; delivered {
			continue
		}
		m.seen[e.Name] = struct{}{}
		emit(Update{Name: e.Name, Entry: e})
	}

	if doc.Summary != nil && !m.summarySent {
		m.summarySent = true
		emit(Update{Summary: doc.Summary})
		if m.config.UntilComplete {
			return doc, true
		}
	}
	return doc, false
}
