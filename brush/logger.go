package brush

import "context"
import "log/slog"
import "sync/atomic"

// Discards all log records. Enabled returns false, so callers skip
// message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Sets the logger used by brushes. By default, brushes produce no log
// output. Passing nil restores the silent logger.
//
// Flush statistics are logged at [slog.LevelDebug] and glyph failures
// at [slog.LevelWarn].
func SetLogger(logger *slog.Logger) {
	if logger == nil { logger = slog.New(nopHandler{}) }
	loggerPtr.Store(logger)
}

// Returns the current brush logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
