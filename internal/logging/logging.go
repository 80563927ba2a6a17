// Package logging provides the application logger. Every line goes to
// the error stream as `[<timestamp>]: <message>`, the format the
// historical tool emitted and existing log scrapers match on.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a config string to a Level. Unknown values fall back
// to info rather than failing startup.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// timestamp layout producing e.g. 2025-01-02T03:04:05+0000
const stampLayout = "2006-01-02T15:04:05-0700"

// StderrLogger writes one bracketed-timestamp line per message.
type StderrLogger struct {
	mu  sync.Mutex
	w   io.Writer
	min Level
	now func() time.Time
}

// New returns a logger on stderr filtered at the given level string.
func New(level string) *StderrLogger {
	return NewWithWriter(os.Stderr, ParseLevel(level))
}

// NewWithWriter is used by tests and by callers that redirect diagnostics.
func NewWithWriter(w io.Writer, min Level) *StderrLogger {
	return &StderrLogger{w: w, min: min, now: time.Now}
}

func (l *StderrLogger) emit(lv Level, msg string, args ...any) {
	if lv < l.min {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "[%s]: %s\n", l.now().Format(stampLayout), fmt.Sprintf(msg, args...))
}

func (l *StderrLogger) Debug(msg string, args ...any) { l.emit(LevelDebug, msg, args...) }
func (l *StderrLogger) Info(msg string, args ...any)  { l.emit(LevelInfo, msg, args...) }
func (l *StderrLogger) Warn(msg string, args ...any)  { l.emit(LevelWarn, msg, args...) }
func (l *StderrLogger) Error(msg string, args ...any) { l.emit(LevelError, msg, args...) }
