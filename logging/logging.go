// Package logging contains the small leveled Logger used across prism and its loader.
package logging

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// Logger is the leveled logger used for warnings and diagnostics.
type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// DefaultLogger writes debug and info lines to stdout and warnings and errors to stderr.
type DefaultLogger struct {
	mu     sync.Mutex
	debug  bool
	prefix string
	out    *log.Logger
	err    *log.Logger
}

// NewDefaultLogger creates a DefaultLogger whose lines start with prefix. debug sets whether Debugf prints.
func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	flags := log.LstdFlags | log.Lmicroseconds
	return &DefaultLogger{
		debug:  debug,
		prefix: prefix,
		out:    log.New(os.Stdout, "", flags),
		err:    log.New(os.Stderr, "", flags),
	}
}

// NewLogger creates a DefaultLogger that writes every level to the given log.Logger.
func NewLogger(prefix string, debug bool, target *log.Logger) *DefaultLogger {
	return &DefaultLogger{
		debug:  debug,
		prefix: prefix,
		out:    target,
		err:    target,
	}
}

// DebugEnabled returns whether Debugf output is printed.
func (l *DefaultLogger) DebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

// SetDebug turns Debugf output on or off.
func (l *DefaultLogger) SetDebug(enabled bool) {
	l.mu.Lock()
	l.debug = enabled
	l.mu.Unlock()
}

func (l *DefaultLogger) prefixf(level string, format string, args ...any) string {
	if l.prefix != "" {
		return fmt.Sprintf("[%s] %s: %s", l.prefix, level, fmt.Sprintf(format, args...))
	}
	return fmt.Sprintf("%s: %s", level, fmt.Sprintf(format, args...))
}

// Debugf logs a debug message if debug output is enabled.
func (l *DefaultLogger) Debugf(format string, args ...any) {
	if !l.DebugEnabled() {
		return
	}
	l.out.Print(l.prefixf("DEBUG", format, args...))
}

// Infof logs an informational message.
func (l *DefaultLogger) Infof(format string, args ...any) {
	l.out.Print(l.prefixf("INFO", format, args...))
}

// Warnf logs a warning.
func (l *DefaultLogger) Warnf(format string, args ...any) {
	l.err.Print(l.prefixf("WARN", format, args...))
}

// Errorf logs an error.
func (l *DefaultLogger) Errorf(format string, args ...any) {
	l.err.Print(l.prefixf("ERROR", format, args...))
}

type nopLogger struct{}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger { return &nopLogger{} }

func (n *nopLogger) DebugEnabled() bool                { return false }
func (n *nopLogger) SetDebug(enabled bool)             {}
func (n *nopLogger) Debugf(format string, args ...any) {}
func (n *nopLogger) Infof(format string, args ...any)  {}
func (n *nopLogger) Warnf(format string, args ...any)  {}
func (n *nopLogger) Errorf(format string, args ...any) {}

// Recorder is a Logger that keeps every formatted line in memory; it's handy for asserting on warnings.
type Recorder struct {
	mu    sync.Mutex
	Lines []string
}

func (r *Recorder) record(level, format string, args ...any) {
	r.mu.Lock()
	r.Lines = append(r.Lines, level+": "+fmt.Sprintf(format, args...))
	r.mu.Unlock()
}

// Count returns how many lines have been recorded so far.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Lines)
}

// DebugEnabled always returns true; a Recorder keeps every level.
func (r *Recorder) DebugEnabled() bool                { return true }
func (r *Recorder) SetDebug(enabled bool)             {}
func (r *Recorder) Debugf(format string, args ...any) { r.record("DEBUG", format, args...) }
func (r *Recorder) Infof(format string, args ...any)  { r.record("INFO", format, args...) }
func (r *Recorder) Warnf(format string, args ...any)  { r.record("WARN", format, args...) }
func (r *Recorder) Errorf(format string, args ...any) { r.record("ERROR", format, args...) }
