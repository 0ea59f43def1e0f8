// Package log configures structured logging for schemedash using log/slog.
package log

import (
	"io"
	"log/slog"
	"os"

	"github.com/schemedash/schemedash/internal/redact"
)

// Setup configures the default slog logger based on verbosity flags.
//
//   - quiet mode:   only WARN and ERROR messages
//   - normal mode:  INFO and above
//   - verbose mode: DEBUG and above
//
// Output goes to stderr as text, or as JSON lines when asJSON is set.
func Setup(verbose, quiet, asJSON bool) {
	slog.SetDefault(New(os.Stderr, verbose, quiet, asJSON))
}

// New returns a logger writing to w with the same level rules as Setup.
// String attribute values have URL credentials redacted.
func New(w io.Writer, verbose, quiet, asJSON bool) *slog.Logger {
	var level slog.Level
	switch {
	case quiet:
		level = slog.LevelWarn
	case verbose:
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: redactAttr,
	}
	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if asJSON {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

func redactAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindString:
		a.Value = slog.StringValue(redact.String(a.Value.String()))
	case slog.KindAny:
		if err, ok := a.Value.Any().(error); ok {
			a.Value = slog.StringValue(redact.String(err.Error()))
		}
	}
	return a
}
