// Package log provides structured logging backed by logrus.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Level is the severity of a log message.
type Level = logrus.Level

// Log levels, most severe last.
const (
	LevelDebug = logrus.DebugLevel
	LevelInfo  = logrus.InfoLevel
	LevelWarn  = logrus.WarnLevel
	LevelError = logrus.ErrorLevel
)

// ParseLogLevel parses a level name such as "debug" or "WARN".
// An empty string selects LevelInfo.
func ParseLogLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return LevelInfo, nil
	}
	lvl, err := logrus.ParseLevel(s)
	if err != nil {
		return LevelInfo, fmt.Errorf("invalid log level %q: must be debug, info, warn or error", s)
	}
	return lvl, nil
}

// LoggerConfig configures the logger.
type LoggerConfig struct {
	// Level is the minimum log level to output.
	Level Level
	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer
	// Prefix is attached to every entry as the "app" field.
	Prefix string
	// Colors forces colored output even when Output is not a terminal.
	Colors bool
}

// DefaultLoggerConfig returns the default logger configuration.
func DefaultLoggerConfig() LoggerConfig {
	return LoggerConfig{
		Level:  LevelInfo,
		Output: os.Stderr,
		Prefix: "odilia",
	}
}

// Logger provides structured logging. Derived loggers share the level and
// output of the logger they were derived from.
type Logger struct {
	entry *logrus.Entry
}

// NewLogger creates a new logger with the given configuration.
func NewLogger(cfg LoggerConfig) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	base := logrus.New()
	base.SetOutput(cfg.Output)
	base.SetLevel(cfg.Level)
	base.SetReportCaller(false)
	base.SetFormatter(&logrus.TextFormatter{
		ForceColors:      cfg.Colors,
		FullTimestamp:    true,
		QuoteEmptyFields: true,
		TimestampFormat:  "2006-01-02 15:04:05",
	})

	entry := logrus.NewEntry(base)
	if cfg.Prefix != "" {
		entry = entry.WithField("app", cfg.Prefix)
	}
	return &Logger{entry: entry}
}

// WithField returns a new logger with the given field added.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

// WithFields returns a new logger with the given fields added.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	return &Logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

// WithComponent returns a new logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

// WithError returns a new logger with err in the "error" field.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{entry: l.entry.WithError(err)}
}

// SetLevel sets the minimum log level.
func (l *Logger) SetLevel(level Level) {
	l.entry.Logger.SetLevel(level)
}

// Level returns the minimum log level.
func (l *Logger) Level() Level {
	return l.entry.Logger.GetLevel()
}

// SetOutput sets the output writer.
func (l *Logger) SetOutput(w io.Writer) {
	l.entry.Logger.SetOutput(w)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.log(LevelDebug, msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.log(LevelInfo, msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.log(LevelWarn, msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.log(LevelError, msg, args...)
}

func (l *Logger) log(level Level, msg string, args ...any) {
	if !l.entry.Logger.IsLevelEnabled(level) {
		return
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	l.entry.Log(level, msg)
}

// NullLogger is a logger that discards all output.
var NullLogger = func() *Logger {
	base := logrus.New()
	base.SetOutput(io.Discard)
	base.SetLevel(logrus.PanicLevel)
	return &Logger{entry: logrus.NewEntry(base)}
}()

var (
	defaultLogger     *Logger
	defaultLoggerOnce sync.Once
)

// Default returns the process-wide logger.
// It is created with DefaultLoggerConfig on first use.
func Default() *Logger {
	defaultLoggerOnce.Do(func() {
		defaultLogger = NewLogger(DefaultLoggerConfig())
	})
	return defaultLogger
}
