package tabfmt

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, t DisplayTable, cfg *renderConfig) error {
	g := newGrid(t, cfg)
	cw := csv.NewWriter(w)
	cw.Comma = cfg.delimiter
	if len(g.header) > 0 {
		if err := cw.Write(g.header); err != nil {
			return err
		}
	}
	for _, row := range g.rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeCSVRow writes and flushes a single record.
func writeCSVRow(w io.Writer, comma rune, row []string) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
