// Package logging provides structured JSON logging on top of log/slog.
// The terminal belongs to the TUI, so logs go to a file or nowhere.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Log levels accepted by NewLogger.
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Logger is a slog logger with persistent attributes. It is safe for
// concurrent use.
type Logger struct {
	logger *slog.Logger
	out    *sink
	attrs  []slog.Attr
}

// sink is the file shared by a logger and its children.
type sink struct {
	mu   sync.Mutex
	file *os.File
}

// NewLogger opens path for appending and returns a JSON logger writing to it.
// An empty path discards all output.
func NewLogger(path string, level string) (*Logger, error) {
	if path == "" {
		return NopLogger(), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	l := newLogger(file, level)
	l.out.file = file
	return l, nil
}

func newLogger(w io.Writer, level string) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return &Logger{
		logger: slog.New(handler),
		out:    &sink{},
	}
}

// NopLogger returns a Logger that discards everything.
func NopLogger() *Logger {
	return newLogger(io.Discard, LevelError)
}

// ParseLevel converts a level name to a slog.Level, defaulting to INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidLevel reports whether level is one of the known level names.
func ValidLevel(level string) bool {
	switch strings.ToUpper(level) {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return true
	}
	return false
}

// With returns a child logger carrying the given key/value pairs.
func (l *Logger) With(args ...any) *Logger {
	if len(args) == 0 {
		return l
	}

	attrs := make([]slog.Attr, 0, len(l.attrs)+len(args)/2)
	attrs = append(attrs, l.attrs...)
	for i := 0; i < len(args)-1; i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		attrs = append(attrs, slog.Any(key, args[i+1]))
	}

	return &Logger{
		logger: l.logger,
		out:    l.out,
		attrs:  attrs,
	}
}

func (l *Logger) Debug(msg string, args ...any) { l.log(slog.LevelDebug, msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.log(slog.LevelInfo, msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.log(slog.LevelWarn, msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.log(slog.LevelError, msg, args...) }

func (l *Logger) log(level slog.Level, msg string, args ...any) {
	all := make([]any, 0, len(l.attrs)*2+len(args))
	for _, attr := range l.attrs {
		all = append(all, attr.Key, attr.Value.Any())
	}
	all = append(all, args...)
	l.logger.Log(context.Background(), level, msg, all...)
}

// Close syncs and closes the log file, if any. Child loggers share the file,
// so closing any of them closes it for all.
func (l *Logger) Close() error {
	l.out.mu.Lock()
	defer l.out.mu.Unlock()

	if l.out.file == nil {
		return nil
	}
	if err := l.out.file.Sync(); err != nil {
		return fmt.Errorf("syncing log file: %w", err)
	}
	if err := l.out.file.Close(); err != nil {
		return fmt.Errorf("closing log file: %w", err)
	}
	l.out.file = nil
	return nil
}
