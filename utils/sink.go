// File: utils/sink.go
package utils

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// LineSink receives the human-readable trace, one line per call.
type LineSink interface {
	PrintLine(format string, args ...interface{})
}

// ConsoleSink writes lines to an io.Writer, one whole line at a time.
type ConsoleSink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsoleSink(w io.Writer) *ConsoleSink {
	return &ConsoleSink{w: w}
}

func (s *ConsoleSink) PrintLine(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, line)
}

// RecordingSink keeps every line in memory. Used by tests.
type RecordingSink struct {
	mu    sync.Mutex
	lines []string
}

func (s *RecordingSink) PrintLine(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	s.mu.Lock()
	s.lines = append(s.lines, line)
	s.mu.Unlock()
}

// Lines returns a copy of the recorded lines.
func (s *RecordingSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Count returns how many recorded lines contain substr.
func (s *RecordingSink) Count(substr string) int {
	n := 0
	for _, l := range s.Lines() {
		if strings.Contains(l, substr) {
			n++
		}
	}
	return n
}
