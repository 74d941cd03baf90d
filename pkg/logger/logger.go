package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Level  string
	Format string
	Output io.Writer
}

// Logger wraps slog. Every method takes a message followed by alternating
// key/value pairs.
type Logger struct {
	logger *slog.Logger
}

func NewLogger(cfg *Config) *Logger {
	opts := &slog.HandlerOptions{
		Level: getLoggerLevel(cfg.Level),
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "text":
		handler = slog.NewTextHandler(out, opts)
	default:
		handler = slog.NewJSONHandler(out, opts)
	}

	return &Logger{
		logger: slog.New(handler),
	}
}

func (l *Logger) Error(msg string, v ...interface{}) {
	l.logger.Error(msg, v...)
}
func (l *Logger) Warn(msg string, v ...interface{}) {
	l.logger.Warn(msg, v...)
}
func (l *Logger) Info(msg string, v ...interface{}) {
	l.logger.Info(msg, v...)
}
func (l *Logger) Debug(msg string, v ...interface{}) {
	l.logger.Debug(msg, v...)
}

// With returns a logger that adds the given key/value pairs to every record.
func (l *Logger) With(v ...interface{}) *Logger {
	return &Logger{logger: l.logger.With(v...)}
}

func getLoggerLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
