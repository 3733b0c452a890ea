package report

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/axion-project/orac-benchmark/internal/errors"
	"github.com/axion-project/orac-benchmark/internal/logger"
	"github.com/axion-project/orac-benchmark/internal/sysinfo"
)

// Store owns the result document for one suite run. Every mutation is
// followed by a full durable rewrite of the document, so an external reader
// polling the report path always sees a complete, parseable snapshot of the
// run so far. Record and RecordFailure are safe for concurrent callers; the
// internal mutex also serializes the durable writes.
type Store struct {
	mu        sync.Mutex
	path      string
	startedAt time.Time
	doc       *Document
}

// NewStore creates a store for a run that started at startedAt, writing to
// path. The initial document carries only metadata; it is not persisted
// until Persist or the first Record call.
func NewStore(path string, startedAt time.Time, sys sysinfo.Info) *Store {
	return &Store{
		path:      path,
		startedAt: startedAt,
		doc: NewDocument(Metadata{
			StartTime:  Timestamp(startedAt),
			Version:    Version,
			SystemInfo: sys,
		}),
	}
}

// Path returns the durable storage location.
func (s *Store) Path() string {
	return s.path
}

// Record adds a successful benchmark entry and persists the document.
func (s *Store) Record(name string, result interface{}, completedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Entry{Name: name, Result: result, CompletedAt: Timestamp(completedAt)}
	if err := s.doc.Append(entry); err != nil {
		return errors.NewStorageError(errors.CodeStorageSerialize,
			"Failed to record benchmark result", "Report update").
			WithContext("benchmark", name).
			WithOriginalError(err)
	}
	return s.persistLocked()
}

// RecordFailure adds a failed benchmark entry and persists the document.
func (s *Store) RecordFailure(name string, benchErr error, completedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Entry{Name: name, Error: benchErr.Error(), CompletedAt: Timestamp(completedAt)}
	if err := s.doc.Append(entry); err != nil {
		return errors.NewStorageError(errors.CodeStorageSerialize,
			"Failed to record benchmark failure", "Report update").
			WithContext("benchmark", name).
			WithOriginalError(err)
	}
	return s.persistLocked()
}

// Finalize stamps the end of the run, attaches the summary, and persists
// the completed document.
func (s *Store) Finalize(endedAt time.Time, summary Summary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc.Metadata.EndTime = Timestamp(endedAt)
	s.doc.Metadata.TotalDuration = endedAt.Sub(s.startedAt).String()
	s.doc.Summary = &summary
	return s.persistLocked()
}

// Persist writes the current document without mutating it.
func (s *Store) Persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked()
}

// Serialize returns the current document bytes without writing them.
func (s *Store) Serialize() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.serializeLocked()
}

// Snapshot returns an independent copy of the current document.
func (s *Store) Snapshot() *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Len returns the number of recorded entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Len()
}

func (s *Store) serializeLocked() ([]byte, error) {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return nil, errors.NewStorageError(errors.CodeStorageSerialize,
			"Failed to serialize report document", "Report serialization").
			WithContext("path", s.path).
			WithOriginalError(err)
	}
	return append(data, '\n'), nil
}

func (s *Store) persistLocked() error {
	data, err := s.serializeLocked()
	if err != nil {
		return err
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return errors.NewReportWriteError(s.path, err)
	}

	logger.Op.WithFields(map[string]interface{}{
		"path":    s.path,
		"entries": s.doc.Len(),
	}).Debug("report persisted")
	return nil
}
