package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"firebaseconfig/internal/webconfig"
)

// Logger wraps slog.Logger to implement the webconfig.Logger interface
type Logger struct {
	slogger *slog.Logger
	attrs   []slog.Attr
}

// NewLogger creates a logger writing to stdout
func NewLogger(config webconfig.LoggingConfig) (webconfig.Logger, error) {
	return NewLoggerWithWriter(config, os.Stdout)
}

// NewLoggerWithWriter creates a logger writing to w
func NewLoggerWithWriter(config webconfig.LoggingConfig, w io.Writer) (webconfig.Logger, error) {
	level, err := parseLogLevel(config.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(config.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return &Logger{
		slogger: slog.New(handler),
		attrs:   make([]slog.Attr, 0),
	}, nil
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.log(slog.LevelDebug, msg, keysAndValues...)
}

// Info logs an info message
func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.log(slog.LevelInfo, msg, keysAndValues...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.log(slog.LevelWarn, msg, keysAndValues...)
}

// Error logs an error message
func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.log(slog.LevelError, msg, keysAndValues...)
}

// Notice writes an info record straight to the handler, skipping the level check
func (l *Logger) Notice(msg string, keysAndValues ...any) {
	r := slog.NewRecord(time.Now(), slog.LevelInfo, msg, 0)
	r.AddAttrs(l.attrs...)
	r.AddAttrs(l.parseKeyValues(keysAndValues...)...)
	_ = l.slogger.Handler().Handle(context.TODO(), r)
}

func (l *Logger) log(level slog.Level, msg string, keysAndValues ...any) {
	attrs := l.parseKeyValues(keysAndValues...)
	all := make([]slog.Attr, 0, len(l.attrs)+len(attrs))
	all = append(all, l.attrs...)
	all = append(all, attrs...)
	l.slogger.LogAttrs(context.TODO(), level, msg, all...)
}

// With returns a new logger with additional fields
func (l *Logger) With(keysAndValues ...any) webconfig.Logger {
	newAttrs := make([]slog.Attr, len(l.attrs))
	copy(newAttrs, l.attrs)
	newAttrs = append(newAttrs, l.parseKeyValues(keysAndValues...)...)

	return &Logger{
		slogger: l.slogger,
		attrs:   newAttrs,
	}
}

// parseKeyValues converts key-value pairs to slog attributes
func (l *Logger) parseKeyValues(keysAndValues ...any) []slog.Attr {
	var attrs []slog.Attr

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		attrs = append(attrs, slog.Any(key, keysAndValues[i+1]))
	}

	return attrs
}

// parseLogLevel parses a log level string to slog.Level
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", level)
	}
}
