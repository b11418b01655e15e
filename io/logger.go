package optio

import (
	"fmt"
	stdio "io"

	"github.com/fatih/color"
)

// Level is the severity of a trace message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes leveled trace messages through a Manager. Parsers use it
// for optional tracing of token dispatch; it is silent below its
// threshold.
type Logger struct {
	io       *Manager
	min      Level
	colors   map[Level]*color.Color
	toStderr bool
}

// NewLogger creates a logger bound to the manager, tracing at LevelInfo
// and above.
func NewLogger(io *Manager) *Logger {
	return &Logger{
		io:  io,
		min: LevelInfo,
		colors: map[Level]*color.Color{
			LevelDebug: color.New(color.FgMagenta),
			LevelInfo:  color.New(color.FgBlue),
			LevelWarn:  color.New(color.FgYellow),
			LevelError: color.New(color.FgRed),
		},
		toStderr: true,
	}
}

// WithLevel sets the minimum level emitted and returns the logger for
// chaining.
func (l *Logger) WithLevel(min Level) *Logger {
	l.min = min
	return l
}

// ErrorsToStdout routes warnings and errors to the output stream instead
// of the error stream.
func (l *Logger) ErrorsToStdout() *Logger {
	l.toStderr = false
	return l
}

// Logf emits one message at the given level.
func (l *Logger) Logf(level Level, format string, args ...any) {
	if level < l.min {
		return
	}
	msg := fmt.Sprintf(format, args...)
	tag := l.colors[level].Sprintf("[%s]", level)
	fmt.Fprintf(l.writer(level), "%s %s\n", tag, msg)
}

func (l *Logger) writer(level Level) stdio.Writer {
	if l.toStderr && level >= LevelWarn {
		return l.io.Err()
	}
	return l.io.Out()
}

// Debugf emits a debug-level message.
func (l *Logger) Debugf(format string, args ...any) { l.Logf(LevelDebug, format, args...) }

// Infof emits an info-level message.
func (l *Logger) Infof(format string, args ...any) { l.Logf(LevelInfo, format, args...) }

// Warnf emits a warning-level message.
func (l *Logger) Warnf(format string, args ...any) { l.Logf(LevelWarn, format, args...) }

// Errorf emits an error-level message.
func (l *Logger) Errorf(format string, args ...any) { l.Logf(LevelError, format, args...) }
