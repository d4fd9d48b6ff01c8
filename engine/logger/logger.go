// Package logger provides the leveled diagnostic logger shared by the engine packages.
// Messages are written through a stdlib log.Logger with a level and a [Tag] prefix,
// e.g. "2026/10/15 12:00:00 WARN  [OrbitControls] pan disabled: ...".
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level represents the severity of a log message.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO ",
	LevelWarn:  "WARN ",
	LevelError: "ERROR",
}

// String returns the lowercase level name.
func (l Level) String() string {
	return strings.ToLower(strings.TrimSpace(levelNames[l]))
}

// ParseLevel converts a level name ("debug", "info", "warn", "error") into a Level.
// An empty string maps to LevelInfo.
//
// Parameters:
//   - s: the level name, case-insensitive
//
// Returns:
//   - Level: the parsed level
//   - error: non-nil if the name is not recognized
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger is a leveled logger. Child loggers created with Tag share the parent's
// output and level.
type Logger struct {
	out   *log.Logger
	level *atomic.Int32
	tag   string
}

// New creates a Logger writing to w at the given minimum level.
//
// Parameters:
//   - level: minimum level that is written
//   - w: destination writer
//
// Returns:
//   - *Logger: the logger
func New(level Level, w io.Writer) *Logger {
	lvl := &atomic.Int32{}
	lvl.Store(int32(level))
	return &Logger{
		out:   log.New(w, "", log.LstdFlags),
		level: lvl,
	}
}

var defaultLogger = New(LevelInfo, os.Stderr)

// Default returns the process-wide logger writing to stderr at LevelInfo.
func Default() *Logger {
	return defaultLogger
}

// Discard returns a logger that drops every message.
func Discard() *Logger {
	return New(LevelError+1, io.Discard)
}

// Tag returns a child logger that prefixes every message with [tag].
func (l *Logger) Tag(tag string) *Logger {
	return &Logger{out: l.out, level: l.level, tag: tag}
}

// SetLevel changes the minimum level for this logger and every logger sharing its output.
func (l *Logger) SetLevel(level Level) {
	l.level.Store(int32(level))
}

// Level returns the current minimum level.
func (l *Logger) Level() Level {
	return Level(l.level.Load())
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.Level()
}

func (l *Logger) logf(level Level, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if l.tag != "" {
		l.out.Printf("%s [%s] %s", levelNames[level], l.tag, msg)
		return
	}
	l.out.Printf("%s %s", levelNames[level], msg)
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...any) {
	l.logf(LevelDebug, format, args...)
}

// Infof logs a formatted info message.
func (l *Logger) Infof(format string, args ...any) {
	l.logf(LevelInfo, format, args...)
}

// Warnf logs a formatted warning.
func (l *Logger) Warnf(format string, args ...any) {
	l.logf(LevelWarn, format, args...)
}

// Errorf logs a formatted error.
func (l *Logger) Errorf(format string, args ...any) {
	l.logf(LevelError, format, args...)
}
