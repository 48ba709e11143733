package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger together with the file it writes to.
type Logger struct {
	zerolog.Logger
	closer io.Closer
}

// ParseLevel parses level, falling back to info for empty or unknown input.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// New opens path for appending and returns a logger writing to it.
// An empty path returns a no-op logger.
func New(path, level string) (*Logger, error) {
	if path == "" {
		return &Logger{Logger: zerolog.Nop()}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l := NewWithWriter(f, level)
	l.closer = f
	l.Debug().Str("path", path).Str("level", ParseLevel(level).String()).Msg("logger initialized")
	return l, nil
}

// NewWithWriter returns a logger writing JSON lines to w.
func NewWithWriter(w io.Writer, level string) *Logger {
	zl := zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
	return &Logger{Logger: zl}
}

// Component returns a child logger tagged with the component name.
func (l *Logger) Component(name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// Close closes the underlying log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
