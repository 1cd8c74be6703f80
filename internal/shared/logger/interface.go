package logger

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"
)

// Interface is the logger handed to use cases, repositories and handlers.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Interface
	Named(name string) Interface

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}

type slogLogger struct {
	logger *slog.Logger
}

func NewLogger() Interface {
	return &slogLogger{
		logger: Get(),
	}
}

func NewLoggerWithSlog(slogLog *slog.Logger) Interface {
	return &slogLogger{
		logger: slogLog,
	}
}

// NewNop returns a logger that drops every record.
func NewNop() Interface {
	return &slogLogger{
		logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1})),
	}
}

func (l *slogLogger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, msg, args)
}

func (l *slogLogger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, msg, args)
}

func (l *slogLogger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, msg, args)
}

func (l *slogLogger) Error(msg string, args ...any) {
	l.log(slog.LevelError, msg, args)
}

func (l *slogLogger) With(args ...any) Interface {
	return &slogLogger{
		logger: l.logger.With(args...),
	}
}

func (l *slogLogger) Named(name string) Interface {
	return &slogLogger{
		logger: l.logger.With("logger", name),
	}
}

func (l *slogLogger) Debugw(msg string, keysAndValues ...interface{}) {
	l.log(slog.LevelDebug, msg, keysAndValues)
}

func (l *slogLogger) Infow(msg string, keysAndValues ...interface{}) {
	l.log(slog.LevelInfo, msg, keysAndValues)
}

func (l *slogLogger) Warnw(msg string, keysAndValues ...interface{}) {
	l.log(slog.LevelWarn, msg, keysAndValues)
}

func (l *slogLogger) Errorw(msg string, keysAndValues ...interface{}) {
	l.log(slog.LevelError, msg, keysAndValues)
}

// log records the caller of the exported method rather than this wrapper.
func (l *slogLogger) log(level slog.Level, msg string, args []any) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = l.logger.Handler().Handle(ctx, r)
}
