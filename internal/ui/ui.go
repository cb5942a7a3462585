// Package ui decides when terminal output is colored and builds styles for
// table headers.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode determines when to use colored output.
type ColorMode int

const (
	// ColorAuto colors output only when writing to a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways forces colored output.
	ColorAlways
	// ColorNever disables colored output.
	ColorNever
)

// ParseColorMode parses "auto", "always" or "never". Empty means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q (expected auto|always|never)", s)
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Profile resolves the color profile for w. NO_COLOR forces plain output.
func Profile(w io.Writer, mode ColorMode) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		mode = ColorNever
	}
	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		if p := termenv.ColorProfile(); p != termenv.Ascii {
			return p
		}
		return termenv.ANSI256
	default:
		if !IsTerminal(w) {
			return termenv.Ascii
		}
		return termenv.ColorProfile()
	}
}

// HeaderStyle returns a bold cyan style for table headers, or nil when the
// profile has no colors.
func HeaderStyle(w io.Writer, mode ColorMode) func(string) string {
	profile := Profile(w, mode)
	if profile == termenv.Ascii {
		return nil
	}
	out := termenv.NewOutput(w, termenv.WithProfile(profile))
	return func(s string) string {
		return out.String(s).Bold().Foreground(termenv.ANSICyan).String()
	}
}
