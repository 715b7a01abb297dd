// ABOUTME: Shared logger construction for the command line tools
// ABOUTME: Text handler on stderr with a debug toggle
package cli

import (
	"log/slog"
	"os"
)

// NewLogger returns the logger both commands install as the slog
// default: text output on stderr, level Info, or Debug when the
// -debug flag is set.
func NewLogger(debug bool) *slog.Logger {
	lvl := slog.LevelInfo
	if debug {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
