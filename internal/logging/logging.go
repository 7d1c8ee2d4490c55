// Package logging provides the bracketed-tag log wrapper used throughout
// this core, matching the [TAG] prefix convention the rest of the original
// codebase logs with.
package logging

import (
	"log"
	"os"
)

// Level filters which tagged messages actually reach the underlying
// logger.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func ParseLevel(s string) Level {
	switch s {
	case "DEBUG":
		return LevelDebug
	case "WARN":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger wraps the standard logger with a minimum level and a bracketed
// subsystem tag, e.g. "[PPU] scanline -1 reached".
type Logger struct {
	tag string
	min Level
	out *log.Logger
}

// New returns a Logger writing to stderr tagged with name.
func New(name string, min Level) *Logger {
	return &Logger{tag: name, min: min, out: log.New(os.Stderr, "", log.LstdFlags)}
}

func (l *Logger) log(level Level, format string, args ...any) {
	if level < l.min {
		return
	}
	l.out.Printf("[%s] "+format, append([]any{l.tag}, args...)...)
}

func (l *Logger) Debugf(format string, args ...any) { l.log(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.log(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.log(LevelError, format, args...) }
