package gridview

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record; Enabled returns false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger installs the logger used by the grid view. By default nothing
// is logged. Pass nil to restore the silent default.
//
// Levels:
//   - [slog.LevelDebug]: reconfiguration, buffer allocation, zoom steps and
//     write passes with the number of runs the bounds check skipped
//   - [slog.LevelInfo]: fit decisions
//   - [slog.LevelWarn]: rejected parameters
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
