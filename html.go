package tabfmt

import (
	"fmt"
	"html"
	"io"
)

func writeHTML(w io.Writer, t DisplayTable, cfg *renderConfig) error {
	g := newGrid(t, cfg)

	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	if cfg.title != "" {
		if _, err := fmt.Fprintf(w, "  <caption>%s</caption>\n", html.EscapeString(cfg.title)); err != nil {
			return err
		}
	}

	if len(g.header) > 0 {
		if err := writeHTMLSection(w, "thead", "th", [][]string{g.header}, g.aligns); err != nil {
			return err
		}
	}
	if err := writeHTMLSection(w, "tbody", "td", g.rows, g.aligns); err != nil {
		return err
	}
	if len(g.footer) > 0 {
		if err := writeHTMLSection(w, "tfoot", "td", [][]string{g.footer}, g.aligns); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func writeHTMLSection(w io.Writer, section, cellTag string, rows [][]string, aligns []Alignment) error {
	if _, err := fmt.Fprintf(w, "  <%s>\n", section); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for i, cell := range row {
			style := alignStyle(aligns, i)
			if _, err := fmt.Fprintf(w, "      <%s%s>%s</%s>\n", cellTag, style, html.EscapeString(cell), cellTag); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  </%s>\n", section)
	return err
}

func alignStyle(aligns []Alignment, col int) string {
	if col >= len(aligns) {
		return ""
	}
	switch aligns[col] {
	case AlignRight:
		return ` style="text-align: right"`
	case AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
