package tabfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"
)

// WriteSeq renders rows from an iterator as they arrive. For formats where
// rows are independent (CSV, TSV, JSONL) each row is written immediately.
// JSON rows are streamed as compact array elements. Formats that need every
// row for layout (Table, Markdown, HTML, YAML, GoTemplate) collect the rows
// first; their column kinds are inferred from the cells.
func WriteSeq(w io.Writer, f Format, columns []string, seq iter.Seq[[]any], opts ...RenderOption) error {
	switch f {
	case CSV:
		cfg := newRenderConfig(opts)
		return streamText(w, columns, seq, cfg, func(cells []string) error {
			return writeCSVRow(w, cfg.delimiter, cells)
		})
	case TSV:
		cfg := newRenderConfig(opts)
		return streamText(w, columns, seq, cfg, func(cells []string) error {
			return writeTSVRow(w, cells)
		})
	case JSONL:
		return streamJSONL(w, columns, seq)
	case JSON:
		return streamJSON(w, columns, seq)
	case Table, Markdown, HTML, YAML:
		return streamCollect(w, f, columns, seq, opts)
	default:
		if strings.HasPrefix(string(f), goTemplatePrefix) {
			return streamCollect(w, f, columns, seq, opts)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// WriteFrame streams every row of f. It is a thin wrapper around [WriteSeq].
func WriteFrame(w io.Writer, format Format, f *Frame, opts ...RenderOption) error {
	return WriteSeq(w, format, f.Columns(), f.All(), opts...)
}

func streamCollect(w io.Writer, f Format, columns []string, seq iter.Seq[[]any], opts []RenderOption) error {
	t := DisplayTable{Names: columns}
	for row := range seq {
		t.Rows = append(t.Rows, row)
	}
	t.Kinds = make([]Kind, len(columns))
	for c := range columns {
		t.Kinds[c] = inferKind(columnValues(t.Rows, c))
	}
	return t.Write(w, f, opts...)
}

// streamText writes the header then one formatted row per element. Column
// kinds are unknown while streaming, so cell formatters see the kind of each
// cell on its own.
func streamText(w io.Writer, columns []string, seq iter.Seq[[]any], cfg *renderConfig, write func([]string) error) error {
	if len(columns) > 0 {
		if err := write(columns); err != nil {
			return err
		}
	}
	for row := range seq {
		cells := make([]string, len(row))
		for c, v := range row {
			cells[c] = cfg.cell(c, KindOf(v), v)
		}
		if err := write(cells); err != nil {
			return err
		}
	}
	return nil
}

func streamJSONL(w io.Writer, columns []string, seq iter.Seq[[]any]) error {
	enc := json.NewEncoder(w)
	for row := range seq {
		if err := enc.Encode(record{keys: columns, values: row}); err != nil {
			return err
		}
	}
	return nil
}

func streamJSON(w io.Writer, columns []string, seq iter.Seq[[]any]) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	first := true
	for row := range seq {
		if !first {
			if _, err := io.WriteString(w, ","); err != nil {
				return err
			}
		}
		first = false
		data, err := json.Marshal(record{keys: columns, values: row})
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "]\n")
	return err
}
