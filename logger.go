package textlayout

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/textlayout/controller"
	"github.com/gogpu/textlayout/layout"
	"github.com/gogpu/textlayout/text"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for textlayout and all its sub-packages.
// By default, textlayout produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by textlayout:
//   - [slog.LevelDebug]: line decisions, font sources, model builds, relayouts
//   - [slog.LevelWarn]: fonts the shaper cannot parse, failed bidi analysis
//
// Example:
//
//	// Enable debug-level logging for full diagnostics:
//	textlayout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	layout.SetLogger(l)
	text.SetLogger(l)
	controller.SetLogger(l)
}

// Logger returns the current logger used by textlayout.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
