package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/335g/clidoc/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Resolved aws-sdk-s3 1.68.0 (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports graph loads and resolutions at debug level through the
// logger attached to each call's context.
type logHooks struct{}

func (logHooks) OnLoadStart(ctx context.Context, loader, source string) {
	if source == "" {
		source = "."
	}
	loggerFromContext(ctx).Debug("loading dependency graph", "loader", loader, "source", source)
}

func (logHooks) OnLoadComplete(ctx context.Context, loader, source string, packages int, d time.Duration, err error) {
	l := loggerFromContext(ctx)
	if err != nil {
		l.Debug("dependency graph load failed", "loader", loader, "err", err)
		return
	}
	l.Debug("dependency graph loaded", "loader", loader, "packages", packages, "took", d.Round(time.Millisecond))
}

func (logHooks) OnResolve(ctx context.Context, crate, version string, matched bool) {
	loggerFromContext(ctx).Debug("resolved", "crate", crate, "version", version, "matched", matched)
}

// installLogHooks registers logHooks with the observability package.
func installLogHooks() {
	observability.SetGraphHooks(logHooks{})
	observability.SetResolveHooks(logHooks{})
}
