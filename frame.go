package tabfmt

import (
	"fmt"
	"iter"
	"slices"
)

// Tabular is the input boundary of the package: ordered named columns over
// ordered rows. Implementations must be safe to read for the duration of a
// call and are never mutated.
type Tabular interface {
	Columns() []string
	NumRows() int
	Value(row, col int) any
}

// Kinded reports the declared value kind of each column. When a [Tabular]
// does not implement it, kinds are inferred from the cells.
type Kinded interface {
	Kind(col int) Kind
}

// Column is a named sequence of values of one kind.
type Column struct {
	Name   string
	Kind   Kind
	Values []any
}

// Frame is an immutable, column-oriented [Tabular].
type Frame struct {
	cols []Column
	rows int
}

// NewFrame builds a Frame from columns of equal length. Values are copied.
//
// A column declared with a concrete Kind rejects non-nil values of any other
// kind with [ErrTypeKind]. A KindAny column takes the kind of its values when
// they agree.
func NewFrame(cols ...Column) (*Frame, error) {
	f := &Frame{cols: make([]Column, len(cols))}
	for i, c := range cols {
		if i == 0 {
			f.rows = len(c.Values)
		} else if len(c.Values) != f.rows {
			return nil, fmt.Errorf("%w: column %q has %d values, want %d", ErrShape, c.Name, len(c.Values), f.rows)
		}
		if c.Kind != KindAny {
			for row, v := range c.Values {
				if v != nil && KindOf(v) != c.Kind {
					return nil, fmt.Errorf("%w: column %q row %d: %T is not %s", ErrTypeKind, c.Name, row, v, c.Kind)
				}
			}
		} else {
			c.Kind = inferKind(slices.Values(c.Values))
		}
		f.cols[i] = Column{Name: c.Name, Kind: c.Kind, Values: slices.Clone(c.Values)}
	}
	return f, nil
}

// MustFrame is like [NewFrame] but panics on error.
func MustFrame(cols ...Column) *Frame {
	f, err := NewFrame(cols...)
	if err != nil {
		panic(err)
	}
	return f
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.Name
	}
	return names
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int { return f.rows }

// NumCols returns the number of columns.
func (f *Frame) NumCols() int { return len(f.cols) }

// Kind returns the declared kind of column col.
func (f *Frame) Kind(col int) Kind { return f.cols[col].Kind }

// Value returns the cell at row and col without copying.
func (f *Frame) Value(row, col int) any { return f.cols[col].Values[row] }

// Column returns a copy of column i.
func (f *Frame) Column(i int) Column {
	c := f.cols[i]
	c.Values = slices.Clone(c.Values)
	return c
}

// Row returns a copy of row i in column order.
func (f *Frame) Row(i int) []any {
	row := make([]any, len(f.cols))
	for c := range f.cols {
		row[c] = f.cols[c].Values[i]
	}
	return row
}

// Head returns a frame holding the first n rows.
func (f *Frame) Head(n int) *Frame {
	n = clampRows(n, f.rows)
	return f.slice(0, n)
}

// Tail returns a frame holding the last n rows.
func (f *Frame) Tail(n int) *Frame {
	n = clampRows(n, f.rows)
	return f.slice(f.rows-n, f.rows)
}

// All yields every row in order. Each yielded slice is a fresh copy.
func (f *Frame) All() iter.Seq[[]any] {
	return func(yield func([]any) bool) {
		for i := range f.rows {
			if !yield(f.Row(i)) {
				return
			}
		}
	}
}

func (f *Frame) slice(from, to int) *Frame {
	out := &Frame{cols: make([]Column, len(f.cols)), rows: to - from}
	for i, c := range f.cols {
		out.cols[i] = Column{Name: c.Name, Kind: c.Kind, Values: slices.Clone(c.Values[from:to])}
	}
	return out
}

func clampRows(n, rows int) int {
	return max(0, min(n, rows))
}
