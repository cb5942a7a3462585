package tabfmt

import (
	"fmt"
	"iter"
)

// DisplayTable is the structured content handed to a renderer: column names
// and rows of cell values in column order. Every row has exactly len(Names)
// cells.
type DisplayTable struct {
	Names []string
	Kinds []Kind
	Rows  [][]any
}

// Columns returns the column names. With NumRows, Value and Kind it makes a
// DisplayTable a [Tabular] itself, so it can be windowed again.
func (t DisplayTable) Columns() []string { return append([]string(nil), t.Names...) }

// NumRows returns the number of rows.
func (t DisplayTable) NumRows() int { return len(t.Rows) }

// Value returns the cell at row and col.
func (t DisplayTable) Value(row, col int) any { return t.Rows[row][col] }

// Kind returns the declared kind of col. Columns without a declared kind are
// inferred from their cells.
func (t DisplayTable) Kind(col int) Kind {
	if col < len(t.Kinds) {
		return t.Kinds[col]
	}
	return inferKind(columnValues(t.Rows, col))
}

// WindowOption selects which rows [Tabulate] keeps.
type WindowOption func(*window)

type window struct {
	top, bottom       int
	hasTop, hasBottom bool
}

// Top keeps only the first n rows, or every row when n exceeds the row count.
func Top(n int) WindowOption {
	return func(w *window) { w.top, w.hasTop = n, true }
}

// Bottom keeps only the last n rows, or every row when n exceeds the row
// count.
func Bottom(n int) WindowOption {
	return func(w *window) { w.bottom, w.hasBottom = n, true }
}

// Tabulate copies the rows of t into a DisplayTable, optionally keeping only
// the first or last n rows. Supplying both [Top] and [Bottom] fails with
// [ErrInvalidArgument] whatever their values.
func Tabulate(t Tabular, opts ...WindowOption) (DisplayTable, error) {
	if t == nil {
		return DisplayTable{}, fmt.Errorf("%w: nil table", ErrInvalidArgument)
	}
	if f, ok := t.(*Frame); ok && f == nil {
		return DisplayTable{}, fmt.Errorf("%w: nil frame", ErrInvalidArgument)
	}

	var win window
	for _, opt := range opts {
		opt(&win)
	}
	if win.hasTop && win.hasBottom {
		return DisplayTable{}, fmt.Errorf("%w: cannot specify both top and bottom row counts", ErrInvalidArgument)
	}

	total := t.NumRows()
	from, to := 0, total
	switch {
	case win.hasTop:
		if win.top < 0 {
			return DisplayTable{}, fmt.Errorf("%w: negative top row count %d", ErrInvalidArgument, win.top)
		}
		to = clampRows(win.top, total)
	case win.hasBottom:
		if win.bottom < 0 {
			return DisplayTable{}, fmt.Errorf("%w: negative bottom row count %d", ErrInvalidArgument, win.bottom)
		}
		from = total - clampRows(win.bottom, total)
	}

	names := t.Columns()
	out := DisplayTable{
		Names: append([]string(nil), names...),
		Kinds: make([]Kind, len(names)),
		Rows:  make([][]any, 0, to-from),
	}
	for r := from; r < to; r++ {
		row := make([]any, len(names))
		for c := range names {
			row[c] = t.Value(r, c)
		}
		out.Rows = append(out.Rows, row)
	}

	kinded, hasKinds := t.(Kinded)
	for c := range names {
		if hasKinds {
			out.Kinds[c] = kinded.Kind(c)
		} else {
			out.Kinds[c] = inferKind(columnValues(out.Rows, c))
		}
	}
	return out, nil
}

func columnValues(rows [][]any, col int) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, row := range rows {
			var v any
			if col < len(row) {
				v = row[col]
			}
			if !yield(v) {
				return
			}
		}
	}
}
