package tabfmt

import (
	"fmt"
	"io"
	"strings"
)

var tsvEscaper = strings.NewReplacer("\t", " ", "\n", " ", "\r", "")

func writeTSV(w io.Writer, t DisplayTable, cfg *renderConfig) error {
	g := newGrid(t, cfg)
	if len(g.header) > 0 {
		if err := writeTSVRow(w, g.header); err != nil {
			return err
		}
	}
	for _, row := range g.rows {
		if err := writeTSVRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeTSVRow(w io.Writer, cells []string) error {
	escaped := make([]string, len(cells))
	for i, cell := range cells {
		escaped[i] = tsvEscaper.Replace(cell)
	}
	_, err := fmt.Fprintln(w, strings.Join(escaped, "\t"))
	return err
}
