package events

import (
	"io"
	"os"
	"path/filepath"
	"sync"
)

// LogFileName is the shared log's name inside the temp directory.
const LogFileName = "input_events.txt"

// DefaultLogPath is where every injected instance appends.
func DefaultLogPath() string {
	return filepath.Join(os.TempDir(), LogFileName)
}

// OpenFunc opens the log for appending.
type OpenFunc func(path string) (io.Writer, error)

func openAppend(path string) (io.Writer, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
}

// Sink is the lazily opened shared log of one module instance. Appends from
// threads of the same process are serialised; other processes write the same
// file through their own Sink with no coordination.
type Sink struct {
	path string
	open OpenFunc

	mu sync.Mutex
	w  io.Writer
}

// NewSink returns a sink for path. A nil open uses an O_APPEND file.
func NewSink(path string, open OpenFunc) *Sink {
	if open == nil {
		open = openAppend
	}
	return &Sink{path: path, open: open}
}

// Path returns the log location.
func (s *Sink) Path() string {
	return s.path
}

// Append opens the log if needed and writes the record in one call.
func (s *Sink) Append(r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.w == nil {
		w, err := s.open(s.path)
		if err != nil {
			return queryErr("failed to open file for writing", err)
		}
		s.w = w
	}

	if _, err := io.WriteString(s.w, r.Line()); err != nil {
		return queryErr("failed to write to file", err)
	}
	return nil
}
