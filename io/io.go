// Package optio centralizes the streams used by option sets: where error
// messages, help text, and parse traces go. Streams default to process
// stdio and can be redirected for testing or embedding.
//
// Color handling is delegated to github.com/fatih/color, which honors
// NO_COLOR and detects terminal capability through go-isatty.
package optio

import (
	"fmt"
	stdio "io"
	"os"

	"github.com/fatih/color"
)

// Manager holds the configured streams.
type Manager struct {
	in  stdio.Reader
	out stdio.Writer
	err stdio.Writer

	errColor *color.Color
}

// New returns a manager bound to process stdio.
func New() *Manager {
	return &Manager{
		in:       os.Stdin,
		out:      os.Stdout,
		err:      os.Stderr,
		errColor: color.New(color.FgRed),
	}
}

// WithIn sets the input reader and returns the manager for chaining.
func (m *Manager) WithIn(r stdio.Reader) *Manager { m.in = r; return m }

// WithOut sets the output writer and returns the manager for chaining.
func (m *Manager) WithOut(w stdio.Writer) *Manager { m.out = w; return m }

// WithErr sets the error writer and returns the manager for chaining.
func (m *Manager) WithErr(w stdio.Writer) *Manager { m.err = w; return m }

// NoColor disables colored output on this manager's streams.
func (m *Manager) NoColor() *Manager {
	m.errColor.DisableColor()
	return m
}

// In returns the configured input reader.
func (m *Manager) In() stdio.Reader { return m.in }

// Out returns the configured output writer.
func (m *Manager) Out() stdio.Writer { return m.out }

// Err returns the configured error writer.
func (m *Manager) Err() stdio.Writer { return m.err }

// Printf writes formatted text to the output stream.
func (m *Manager) Printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

// Errorf writes formatted text to the error stream, colored when writing
// to a capable terminal.
func (m *Manager) Errorf(format string, args ...any) {
	if f, ok := m.err.(*os.File); ok && f == os.Stderr {
		m.errColor.Fprintf(m.err, format, args...)
		return
	}
	fmt.Fprintf(m.err, format, args...)
}
