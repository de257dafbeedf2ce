package obslog

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger is the leveled, structured logger every optimizer package
// takes as an explicit dependency (never a package-level global, so
// concurrent optimize calls with different verbosity never race).
type Logger struct {
	l *log.Logger
}

// New returns a Logger writing to w at the given level, with
// millisecond timestamps, mirroring the teacher CLI's newLogger.
func New(w io.Writer, level log.Level) *Logger {
	return &Logger{l: log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           level,
	})}
}

// NewNop returns a Logger that discards everything, the default for
// any component that isn't given an explicit Logger.
func NewNop() *Logger {
	return New(io.Discard, log.FatalLevel+1)
}

// Default returns a Logger writing Info-and-above to stderr, useful
// for examples and manual runs.
func Default() *Logger {
	return New(os.Stderr, log.InfoLevel)
}

// Phase logs the start or completion of one pipeline phase at Info
// level, with structured key/value fields.
func (lg *Logger) Phase(name string, kv ...any) {
	lg.l.Info(name, kv...)
}

// Counts logs per-constraint-family row/column counts at Debug level.
func (lg *Logger) Counts(name string, kv ...any) {
	lg.l.Debug(name, kv...)
}

// Timed logs name at Info level together with the elapsed duration
// since start, mirroring the teacher CLI's progress tracker.
func (lg *Logger) Timed(name string, start time.Time, kv ...any) {
	lg.l.Info(name, append([]any{"elapsed", time.Since(start).Round(time.Millisecond)}, kv...)...)
}

// Error logs err at Error level with structured fields.
func (lg *Logger) Error(name string, err error, kv ...any) {
	lg.l.Error(name, append([]any{"error", err}, kv...)...)
}

// With returns a Logger scoped with the given key/value pairs
// attached to every subsequent line, mirroring charmbracelet/log's own
// With.
func (lg *Logger) With(kv ...any) *Logger {
	return &Logger{l: lg.l.With(kv...)}
}
