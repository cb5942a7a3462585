package tabfmt_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tabfmt"
)

func numbers(n int) *tabfmt.Frame {
	ids := make([]any, n)
	labels := make([]any, n)
	for i := range n {
		ids[i] = i
		labels[i] = string(rune('a' + i%26))
	}
	return tabfmt.MustFrame(
		tabfmt.Column{Name: "id", Kind: tabfmt.KindInt, Values: ids},
		tabfmt.Column{Name: "label", Kind: tabfmt.KindString, Values: labels},
	)
}

func TestNewFrame(t *testing.T) {
	t.Parallel()
	f, err := tabfmt.NewFrame(
		tabfmt.Column{Name: "name", Kind: tabfmt.KindString, Values: []any{"a", nil}},
		tabfmt.Column{Name: "score", Values: []any{1.5, 2.5}},
		tabfmt.Column{Name: "mixed", Values: []any{1, "x"}},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "score", "mixed"}, f.Columns())
	assert.Equal(t, 2, f.NumRows())
	assert.Equal(t, 3, f.NumCols())
	assert.Equal(t, tabfmt.KindString, f.Kind(0))
	assert.Equal(t, tabfmt.KindFloat, f.Kind(1))
	assert.Equal(t, tabfmt.KindAny, f.Kind(2))
	assert.Nil(t, f.Value(1, 0))
	assert.Equal(t, 2.5, f.Value(1, 1))
}

func TestNewFrameErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		cols []tabfmt.Column
		want error
	}{
		"ragged": {
			cols: []tabfmt.Column{
				{Name: "a", Values: []any{1, 2}},
				{Name: "b", Values: []any{1}},
			},
			want: tabfmt.ErrShape,
		},
		"kind mismatch": {
			cols: []tabfmt.Column{{Name: "a", Kind: tabfmt.KindInt, Values: []any{1, "two"}}},
			want: tabfmt.ErrTypeKind,
		},
		"float in int column": {
			cols: []tabfmt.Column{{Name: "a", Kind: tabfmt.KindInt, Values: []any{1.5}}},
			want: tabfmt.ErrTypeKind,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := tabfmt.NewFrame(tt.cols...)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewFrameEmpty(t *testing.T) {
	t.Parallel()
	f, err := tabfmt.NewFrame()
	require.NoError(t, err)
	assert.Empty(t, f.Columns())
	assert.Zero(t, f.NumRows())
}

func TestNewFrameDecimal(t *testing.T) {
	t.Parallel()
	f, err := tabfmt.NewFrame(tabfmt.Column{
		Name:   "price",
		Kind:   tabfmt.KindFloat,
		Values: []any{decimal.RequireFromString("9.99"), 1.25},
	})
	require.NoError(t, err)
	assert.Equal(t, tabfmt.KindFloat, f.Kind(0))
}

func TestMustFramePanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		tabfmt.MustFrame(
			tabfmt.Column{Name: "a", Values: []any{1}},
			tabfmt.Column{Name: "b"},
		)
	})
}

func TestFrameCopiesValues(t *testing.T) {
	t.Parallel()
	values := []any{1, 2, 3}
	f := tabfmt.MustFrame(tabfmt.Column{Name: "n", Values: values})
	values[0] = 99
	assert.Equal(t, 1, f.Value(0, 0))

	col := f.Column(0)
	col.Values[1] = 99
	assert.Equal(t, 2, f.Value(1, 0))

	row := f.Row(2)
	row[0] = 99
	assert.Equal(t, 3, f.Value(2, 0))
}

func TestFrameHeadTail(t *testing.T) {
	t.Parallel()
	f := numbers(5)
	tests := map[string]struct {
		got  *tabfmt.Frame
		want []any
	}{
		"head 2":    {got: f.Head(2), want: []any{0, 1}},
		"head all":  {got: f.Head(9), want: []any{0, 1, 2, 3, 4}},
		"head zero": {got: f.Head(0), want: []any{}},
		"head neg":  {got: f.Head(-1), want: []any{}},
		"tail 2":    {got: f.Tail(2), want: []any{3, 4}},
		"tail all":  {got: f.Tail(9), want: []any{0, 1, 2, 3, 4}},
		"tail zero": {got: f.Tail(0), want: []any{}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := tt.got.Column(0).Values
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ids mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, f.Columns(), tt.got.Columns())
		})
	}
}

func TestFrameAll(t *testing.T) {
	t.Parallel()
	f := numbers(3)
	var rows [][]any
	for row := range f.All() {
		rows = append(rows, row)
	}
	want := [][]any{{0, "a"}, {1, "b"}, {2, "c"}}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}

	// Early break stops iteration.
	n := 0
	for range f.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestKindOf(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		want  tabfmt.Kind
	}{
		"string":  {value: "x", want: tabfmt.KindString},
		"int":     {value: 1, want: tabfmt.KindInt},
		"uint8":   {value: uint8(1), want: tabfmt.KindInt},
		"bool":    {value: true, want: tabfmt.KindBool},
		"float32": {value: float32(1), want: tabfmt.KindFloat},
		"decimal": {value: decimal.NewFromInt(1), want: tabfmt.KindFloat},
		"nil":     {value: nil, want: tabfmt.KindAny},
		"slice":   {value: []int{1}, want: tabfmt.KindAny},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tabfmt.KindOf(tt.value))
		})
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()
	names := []string{"any", "string", "int", "bool", "float"}
	kinds := []tabfmt.Kind{tabfmt.KindAny, tabfmt.KindString, tabfmt.KindInt, tabfmt.KindBool, tabfmt.KindFloat}
	got := make([]string, len(kinds))
	for i, k := range kinds {
		got[i] = k.String()
	}
	assert.Equal(t, names, got)
	assert.Equal(t, "invalid", tabfmt.Kind(-1).String())
	assert.True(t, slices.ContainsFunc(kinds, tabfmt.Kind.Numeric))
	assert.False(t, tabfmt.KindBool.Numeric())
}
