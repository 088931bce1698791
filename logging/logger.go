// Package logging provides the *slog.Logger used for conversion diagnostics.
package logging

import (
	"log/slog"
	"sync/atomic"
)

// logger holds the package-level logger. A nil pointer makes Logger()
// fall back to a discard logger, so diagnostics are off by default.
var logger atomic.Pointer[slog.Logger]

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// SetLogger configures the package-level logger for conversion
// diagnostics. Pass nil to disable logging again.
//
// SetLogger is safe for concurrent use.
//
// Example enabling diagnostics to stderr:
//
//	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
//
// Example capturing diagnostics in tests:
//
//	handler := logging.NewBufferedLogHandler(nil)
//	logging.SetLogger(slog.New(handler))
//	// ... run a conversion ...
//	fmt.Println(handler.String())
func SetLogger(sl *slog.Logger) {
	if sl == nil {
		logger.Store(newDiscardLogger())
	} else {
		logger.Store(sl)
	}
}

// Logger returns the package-level logger, or a discard logger when none
// has been set.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	l := logger.Load()
	if l == nil {
		l = newDiscardLogger()
		logger.Store(l)
	}
	return l
}
