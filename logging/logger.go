// Package logging provides structured logging for antcolony commands.
//
// The package is a thin layer over log/slog:
//
//   - Default: text records on stderr (follows Unix conventions, keeps stdout
//     free for the summary table).
//   - Optional: JSON records for machine consumption.
//   - Nop: a logger that discards everything, used by tests and the
//     interactive viewer (which owns the terminal).
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{Level: logging.LevelInfo, Service: "antcolony"})
//	logger.Info("run started", "cities", n, "ants", cfg.Ants)
//
// The solver itself only sees a *slog.Logger (see Logger.Slog), so library
// code never depends on this package.
//
// # Thread Safety
//
// Logger is safe for concurrent use; the underlying slog.Logger is.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level represents log severity levels, ordered Debug < Info < Warn < Error.
type Level int

const (
	// LevelDebug is for per-iteration tracing.
	LevelDebug Level = iota

	// LevelInfo is for run lifecycle and best-distance improvements.
	LevelInfo

	// LevelWarn is for recoverable issues (e.g. metrics server failed to bind).
	LevelWarn

	// LevelError is for failures that end a command.
	LevelError
)

// String returns the upper-case level name.
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

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel maps a case-insensitive name ("debug", "info", "warn",
// "warning", "error") to a Level.
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
	default:
		return LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// Config configures a Logger.
type Config struct {
	// Level is the minimum level that is emitted.
	Level Level

	// JSON selects the JSON handler instead of text.
	JSON bool

	// Output receives records. Nil means os.Stderr.
	Output io.Writer

	// Service is attached to every record as "service" when non-empty.
	Service string
}

// Logger wraps a slog.Logger with the configuration it was built from.
type Logger struct {
	*slog.Logger
	config Config
}

// New builds a Logger from cfg.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: cfg.Level.toSlogLevel()}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}

	l := slog.New(h)
	if cfg.Service != "" {
		l = l.With("service", cfg.Service)
	}

	return &Logger{Logger: l, config: cfg}
}

// Default returns an Info-level text logger on stderr.
func Default() *Logger {
	return New(Config{Level: LevelInfo, Service: "antcolony"})
}

// Nop returns a logger that discards every record.
func Nop() *Logger {
	return New(Config{Level: LevelError, Output: io.Discard})
}

// Slog exposes the underlying *slog.Logger for library code.
func (l *Logger) Slog() *slog.Logger {
	return l.Logger
}

// Level returns the configured minimum level.
func (l *Logger) Level() Level {
	return l.config.Level
}
