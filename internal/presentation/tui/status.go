package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Status writes coloured one-line outcomes. Colour is dropped when w is not
// a terminal.
type Status struct {
	out *termenv.Output
}

// NewStatus creates a Status writer on w.
func NewStatus(w io.Writer) *Status {
	return &Status{out: termenv.NewOutput(w)}
}

// Success prints a green check line.
func (s *Status) Success(format string, args ...any) {
	s.line("✓", "#22c55e", format, args...)
}

// Failure prints a red cross line.
func (s *Status) Failure(format string, args ...any) {
	s.line("✗", "#ef4444", format, args...)
}

// Item prints an indented bullet in the warning colour.
func (s *Status) Item(format string, args ...any) {
	s.line("  -", "#f59e0b", format, args...)
}

func (s *Status) line(mark, color, format string, args ...any) {
	prefix := s.out.String(mark).Foreground(s.out.Color(color))
	fmt.Fprintf(s.out, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
