// Package logging configures the process-wide slog logger for the CLI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Handler names accepted by Setup.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Setup installs a default slog logger writing to w (os.Stderr when nil).
// debug lowers the level to Debug. format selects the text or JSON handler.
func Setup(debug bool, format string, w io.Writer) error {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	case FormatText, "":
		handler = slog.NewTextHandler(w, opts)
	default:
		return fmt.Errorf("unknown log format %q (expected text|json)", format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}
