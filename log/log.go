// Package log is the leveled logger used throughout tickview. Output is
// discarded until SetOutput is called. The terminal is in raw mode while the
// application runs, so callers log to a buffer or a file and print it once
// the terminal is restored.
package log

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/lmittmann/tint"
	"golang.org/x/exp/slog"
)

const (
	LevelError int = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace

	timeFormat = "15:04:05.000"
)

// slog has no trace level
const slogLevelTrace = slog.LevelDebug - 4

var (
	level  = new(slog.LevelVar)
	logger atomic.Pointer[slog.Logger]
)

func init() {
	level.Set(slog.LevelError)
	logger.Store(newLogger(io.Discard))
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: timeFormat,
		NoColor:    true,
	}))
}

// LevelError = 0
// LevelWarn = 1
// LevelInfo  = 2
// LevelDebug  = 3
// LevelTrace = 4
func SetLevel(l int) {
	level.Set(slogLevel(l))
}

func slogLevel(l int) slog.Level {
	switch {
	case l <= LevelError:
		return slog.LevelError
	case l == LevelWarn:
		return slog.LevelWarn
	case l == LevelInfo:
		return slog.LevelInfo
	case l == LevelDebug:
		return slog.LevelDebug
	default:
		return slogLevelTrace
	}
}

func SetOutput(w io.Writer) {
	logger.Store(newLogger(w))
}

func output(l slog.Level, format string, args ...any) {
	ctx := context.Background()
	lg := logger.Load()
	if !lg.Enabled(ctx, l) {
		return
	}
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	lg.Log(ctx, l, format)
}

func Trace(format string, args ...any) {
	output(slogLevelTrace, format, args...)
}

func Debug(format string, args ...any) {
	output(slog.LevelDebug, format, args...)
}

func Info(format string, args ...any) {
	output(slog.LevelInfo, format, args...)
}

func Warn(format string, args ...any) {
	output(slog.LevelWarn, format, args...)
}

func Error(format string, args ...any) {
	output(slog.LevelError, format, args...)
}
