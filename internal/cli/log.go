package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger writes timestamped lines ("15:04:05.00") at or above level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext falls back to log.Default when no logger is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// elapsed logs msg with the time since start, rounded to milliseconds.
func elapsed(l *log.Logger, start time.Time, msg string, keyvals ...any) {
	l.Info(msg, append(keyvals, "elapsed", time.Since(start).Round(time.Millisecond))...)
}
