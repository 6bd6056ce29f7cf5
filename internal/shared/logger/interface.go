package logger

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// Interface is the structured logger handed to use cases, handlers,
// middleware and background jobs. Arguments after msg are key/value pairs.
type Interface interface {
	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
	With(keysAndValues ...any) Interface
}

type slogAdapter struct {
	l *slog.Logger
}

// NewLogger binds to the process logger configured by Init.
func NewLogger() Interface {
	return slogAdapter{l: Get()}
}

// NewNop returns a logger that discards every record.
func NewNop() Interface {
	return slogAdapter{l: slog.New(slog.DiscardHandler)}
}

func (a slogAdapter) Debugw(msg string, kv ...any) { a.log(slog.LevelDebug, msg, kv) }
func (a slogAdapter) Infow(msg string, kv ...any)  { a.log(slog.LevelInfo, msg, kv) }
func (a slogAdapter) Warnw(msg string, kv ...any)  { a.log(slog.LevelWarn, msg, kv) }
func (a slogAdapter) Errorw(msg string, kv ...any) { a.log(slog.LevelError, msg, kv) }

func (a slogAdapter) With(kv ...any) Interface {
	return slogAdapter{l: a.l.With(kv...)}
}

// log records the caller of the *w method as the source, not the adapter.
func (a slogAdapter) log(level slog.Level, msg string, kv []any) {
	ctx := context.Background()
	if !a.l.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // Callers, log, *w
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(kv...)
	_ = a.l.Handler().Handle(ctx, r)
}
