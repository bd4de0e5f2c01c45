package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/raysh454/sokudo/internal/interfaces"
)

// Config selects the production log handler.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// SlogLogger adapts log/slog to interfaces.Logger. The console format uses
// tint for readable local output; JSON is for production.
type SlogLogger struct {
	sl *slog.Logger
}

// NewSlogLogger builds the production logger. component becomes a persistent
// attribute on every line.
func NewSlogLogger(cfg Config, component string) *SlogLogger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	if cfg.Format == "console" {
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}

	sl := slog.New(handler)
	if component != "" {
		sl = sl.With("component", component)
	}
	return &SlogLogger{sl: sl}
}

func attrs(fields []interfaces.Field) []any {
	out := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		out = append(out, f.Key, f.Value)
	}
	return out
}

func (l *SlogLogger) Debug(msg string, fields ...interfaces.Field) {
	l.sl.Debug(msg, attrs(fields)...)
}

func (l *SlogLogger) Info(msg string, fields ...interfaces.Field) {
	l.sl.Info(msg, attrs(fields)...)
}

func (l *SlogLogger) Warn(msg string, fields ...interfaces.Field) {
	l.sl.Warn(msg, attrs(fields)...)
}

func (l *SlogLogger) Error(msg string, fields ...interfaces.Field) {
	l.sl.Error(msg, attrs(fields)...)
}

func (l *SlogLogger) With(fields ...interfaces.Field) interfaces.Logger {
	return &SlogLogger{sl: l.sl.With(attrs(fields)...)}
}
