package synth_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tabfmt"
	"github.com/bjaus/tabfmt/synth"
)

func rows(f *tabfmt.Frame) [][]any {
	var out [][]any
	for row := range f.All() {
		out = append(out, row)
	}
	return out
}

func TestMixedFrameShape(t *testing.T) {
	t.Parallel()
	f, err := synth.MixedFrame(4, 7)
	require.NoError(t, err)
	assert.Equal(t, 4, f.NumRows())
	assert.Equal(t, []string{
		"Column_1", "Column_2", "Column_3", "Column_4", "Column_5", "Column_6", "Column_7",
	}, f.Columns())

	wantKinds := []tabfmt.Kind{tabfmt.KindString, tabfmt.KindInt, tabfmt.KindBool}
	for c := range f.NumCols() {
		assert.Equal(t, wantKinds[c%3], f.Kind(c), "column %d", c)
	}
}

func TestMixedFrameValues(t *testing.T) {
	t.Parallel()
	f, err := synth.MixedFrame(50, 6)
	require.NoError(t, err)

	assert.Equal(t, "string_0_0", f.Value(0, 0))
	assert.Equal(t, "string_7_3", f.Value(7, 3))
	for r := range f.NumRows() {
		for _, c := range []int{1, 4} {
			n, ok := f.Value(r, c).(int64)
			require.True(t, ok, "row %d col %d", r, c)
			assert.GreaterOrEqual(t, n, int64(0))
			assert.Less(t, n, int64(1000))
		}
		for _, c := range []int{2, 5} {
			assert.IsType(t, true, f.Value(r, c))
		}
	}
}

func TestMixedFrameDeterministic(t *testing.T) {
	t.Parallel()
	a, err := synth.MixedFrame(50, 9)
	require.NoError(t, err)
	b, err := synth.MixedFrame(50, 9, synth.WithSeed(synth.DefaultSeed))
	require.NoError(t, err)
	if diff := cmp.Diff(rows(a), rows(b)); diff != "" {
		t.Errorf("same seed produced different frames (-a +b):\n%s", diff)
	}

	c, err := synth.MixedFrame(50, 9, synth.WithSeed(7))
	require.NoError(t, err)
	assert.False(t, cmp.Equal(rows(a), rows(c)), "different seeds produced equal frames")
}

func TestMixedFrameEmpty(t *testing.T) {
	t.Parallel()
	f, err := synth.MixedFrame(0, 3)
	require.NoError(t, err)
	assert.Zero(t, f.NumRows())
	assert.Equal(t, 3, f.NumCols())

	f, err = synth.MixedFrame(5, 0)
	require.NoError(t, err)
	assert.Zero(t, f.NumCols())
}

func TestMixedFrameNegative(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		rows, cols int
	}{
		"rows": {rows: -1, cols: 3},
		"cols": {rows: 3, cols: -1},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := synth.MixedFrame(tt.rows, tt.cols)
			require.ErrorIs(t, err, tabfmt.ErrInvalidArgument)
		})
	}
}
