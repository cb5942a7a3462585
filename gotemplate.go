package tabfmt

import (
	"fmt"
	"io"
	"text/template"
)

func writeGoTemplate(w io.Writer, tmplStr string, t DisplayTable) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for _, row := range t.Rows {
		if err := tmpl.Execute(w, rowMap(t.Names, row)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// rowMap keys a row by column name. With duplicate names the last column wins.
func rowMap(names []string, row []any) map[string]any {
	m := make(map[string]any, len(names))
	for c, name := range names {
		var v any
		if c < len(row) {
			v = row[c]
		}
		m[name] = v
	}
	return m
}
