package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/eventora/eventora/internal/shared/config"
)

const serviceName = "eventora"

var (
	mu      sync.RWMutex
	current *slog.Logger
)

// Init replaces the process logger. Source locations are attached from warn
// upwards, or on every record when debug is set.
func Init(cfg *config.LoggerConfig, debug bool) error {
	w, err := openOutput(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to open log output: %w", err)
	}

	sourceFrom := slog.LevelWarn
	if debug {
		sourceFrom = slog.LevelDebug
	}

	l := slog.New(newHandler(w, cfg.Format, parseLevel(cfg.Level), sourceFrom)).
		With("service", serviceName)

	mu.Lock()
	current = l
	mu.Unlock()
	slog.SetDefault(l)
	return nil
}

// Get returns the process logger, falling back to a console logger at info
// level when Init has not run (tests, early startup).
func Get() *slog.Logger {
	mu.RLock()
	l := current
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		current = slog.New(newHandler(os.Stdout, "console", slog.LevelInfo, slog.LevelWarn))
	}
	return current
}

func newHandler(w io.Writer, format string, level, sourceFrom slog.Level) slog.Handler {
	if strings.EqualFold(format, "json") {
		return newSourceHandler(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), sourceFrom)
	}
	return newSourceHandler(tint.NewHandler(w, &tint.Options{
		Level:       level,
		TimeFormat:  time.DateTime,
		NoColor:     !isTerminal(w),
		ReplaceAttr: replaceErrorAttr,
	}), sourceFrom)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openOutput(path string) (io.Writer, error) {
	switch strings.ToLower(path) {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}
}

// replaceErrorAttr gives "error" attributes tint's error styling.
func replaceErrorAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key != "error" || a.Value.Kind() != slog.KindAny {
		return a
	}
	if err, ok := a.Value.Any().(error); ok {
		return tint.Err(err)
	}
	return a
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func Debug(msg string, args ...any) { Get().Debug(msg, args...) }
func Info(msg string, args ...any)  { Get().Info(msg, args...) }
func Warn(msg string, args ...any)  { Get().Warn(msg, args...) }
func Error(msg string, args ...any) { Get().Error(msg, args...) }
