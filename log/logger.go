/*
Package log provides a small leveled logger that tags every line with a
colored subsystem label, so the output of several subsystems stays
readable on one shared stream.
*/
package log

import (
	"errors"
	"fmt"
	"io"
	"time"
)

const (
	colorReset = "\033[0m"

	timeFormat = "2006/01/02 15:04:05"
)

// Custom error types
var (
	ErrEmptyLabel = errors.New("logger label is empty")
	ErrNilWriter  = errors.New("logger writer is nil")
)

// Logger writes leveled log lines to a single writer, prefixed with a
// timestamp and the logger's labeled subsystem.
type Logger struct {
	label string    // Subsystem label wrapped into every line.
	color string    // ANSI color escape the label is wrapped in.
	out   io.Writer // Destination stream.
}

// New initializes a logger that tags every line with the given label,
// wrapped in the given ANSI color escape. An empty color leaves the
// label uncolored.
func New(label, color string, out io.Writer) (*Logger, error) {
	if label == "" {
		return nil, ErrEmptyLabel
	}
	if out == nil {
		return nil, ErrNilWriter
	}

	return &Logger{
		label: label,
		color: color,
		out:   out,
	}, nil
}

// Info logs informational messages.
func (l *Logger) Info(msg string) {
	l.write("INFO", msg)
}

// Warning logs unusual but recoverable situations.
func (l *Logger) Warning(msg string) {
	l.write("WARNING", msg)
}

// Error logs failures. It never exits; reacting is the caller's call.
func (l *Logger) Error(msg string) {
	l.write("ERROR", msg)
}

func (l *Logger) write(level, msg string) {
	label := l.label
	if l.color != "" {
		label = l.color + l.label + colorReset
	}

	fmt.Fprintf(l.out, "%s [%s] [%s] %s\n", time.Now().Format(timeFormat), label, level, msg)
}
