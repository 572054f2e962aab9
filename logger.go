package fluffy

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled returns false so callers skip
// building the record at all.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(discardHandler{}))
}

// SetLogger installs the logger used by this module and its sub-packages.
// Nothing is logged until SetLogger is called; passing nil silences
// logging again. Safe for concurrent use.
//
// Levels:
//   - [slog.LevelDebug]: band layout, per-band timings, grid rebuilds
//   - [slog.LevelInfo]: buffer allocation and release
//   - [slog.LevelWarn]: single-threaded fallback after a refused spawn
//
// Example:
//
//	fluffy.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discardHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages (fractal/, overlay/)
// call it instead of holding their own copy.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
