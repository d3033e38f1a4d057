// Package logging builds the CLI's structured logger.
package logging

import (
	"io"

	clog "github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New returns a logger writing to w at the given level. Unknown levels
// fall back to warn so a typo in the config file never silences errors.
func New(w io.Writer, level string) *clog.Logger {
	lvl, err := clog.ParseLevel(level)
	if err != nil {
		lvl = clog.WarnLevel
	}
	return clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		Level:           lvl,
	})
}

// WithInvocation tags every line from l with a fresh invocation id.
func WithInvocation(l *clog.Logger) *clog.Logger {
	return l.With("invocation", uuid.NewString())
}
