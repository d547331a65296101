package qtxt

import "context"
import "log/slog"
import "sync/atomic"

import "github.com/tinne26/qtxt/brush"

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Configures the logger for qtxt and its brushes. By default, nothing
// is logged. Pass nil to restore the silent default.
//
// Levels used:
//   - [slog.LevelDebug]: flush statistics.
//   - [slog.LevelWarn]: glyphs that couldn't be drawn and flush errors.
//
// Example:
//   qtxt.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//       Level: slog.LevelDebug,
//   })))
func SetLogger(logger *slog.Logger) {
	if logger == nil { logger = slog.New(nopHandler{}) }
	loggerPtr.Store(logger)
	brush.SetLogger(logger)
}

// Returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
