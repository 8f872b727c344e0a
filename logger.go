package g3d

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Its Enabled reports false, so log
// calls return before any attribute is evaluated.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }

var silent = slog.New(discardHandler{})

var current atomic.Pointer[slog.Logger]

func init() { current.Store(silent) }

// SetLogger sets the logger shared by g3d and its sub-packages. Nothing is
// logged until it is called; nil restores that silence. It may be called
// while other goroutines log.
//
// Levels in use:
//   - [slog.LevelDebug]: descriptor loading, backend selection and submissions
//   - [slog.LevelWarn]: a backend rejecting a submission
//
// The value types themselves never log.
//
//	g3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set with SetLogger, or a silent one.
func Logger() *slog.Logger { return current.Load() }
