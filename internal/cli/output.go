package cli

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/natefinch/atomic"

	"github.com/bjaus/tabfmt"
	"github.com/bjaus/tabfmt/internal/ui"
)

// emit runs render against stdout, or against a buffer that is then written
// atomically to the --output file.
func (a *App) emit(g *globals, render func(w io.Writer) error) error {
	if g.output == "" {
		return render(a.Stdout)
	}
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	size := buf.Len()
	if err := atomic.WriteFile(g.output, &buf); err != nil {
		return fmt.Errorf("write %s: %w", g.output, err)
	}
	slog.Debug("wrote output", "path", g.output, "bytes", size)
	return nil
}

// writeTable renders t, adding a colored header when w is a color-capable
// terminal and the format is a table.
func (a *App) writeTable(g *globals, t tabfmt.DisplayTable, f tabfmt.Format, opts []tabfmt.RenderOption) error {
	return a.emit(g, func(w io.Writer) error {
		if f == tabfmt.Table {
			if style := ui.HeaderStyle(w, g.colorMode); style != nil {
				opts = append(opts, tabfmt.WithHeaderStyle(style))
			}
		}
		return t.Write(w, f, opts...)
	})
}
