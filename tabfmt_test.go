package tabfmt_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/tabfmt"
)

// --- Helpers ---

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

var errWriteFailed = errors.New("write failed")

// people is the small fixture most rendering tests print.
func people() tabfmt.DisplayTable {
	return tabfmt.DisplayTable{
		Names: []string{"Name", "Age"},
		Kinds: []tabfmt.Kind{tabfmt.KindString, tabfmt.KindInt},
		Rows: [][]any{
			{"Alice", 30},
			{"Bob", 25},
		},
	}
}

// ============================================================
// Tests
// ============================================================

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    tabfmt.Format
		wantErr require.ErrorAssertionFunc
	}{
		"table":       {input: "table", want: tabfmt.Table, wantErr: require.NoError},
		"markdown":    {input: "markdown", want: tabfmt.Markdown, wantErr: require.NoError},
		"csv":         {input: "csv", want: tabfmt.CSV, wantErr: require.NoError},
		"tsv":         {input: "tsv", want: tabfmt.TSV, wantErr: require.NoError},
		"html":        {input: "html", want: tabfmt.HTML, wantErr: require.NoError},
		"json":        {input: "json", want: tabfmt.JSON, wantErr: require.NoError},
		"jsonl":       {input: "jsonl", want: tabfmt.JSONL, wantErr: require.NoError},
		"yaml":        {input: "yaml", want: tabfmt.YAML, wantErr: require.NoError},
		"go-template": {input: "go-template={{.Name}}", want: tabfmt.GoTemplate("{{.Name}}"), wantErr: require.NoError},
		"unknown":     {input: "xml", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabfmt.ParseFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormatUnsupportedSentinel(t *testing.T) {
	t.Parallel()
	_, err := tabfmt.ParseFormat("xml")
	require.ErrorIs(t, err, tabfmt.ErrUnsupportedFormat)
}

func TestFormats(t *testing.T) {
	t.Parallel()
	got := tabfmt.Formats()
	assert.Equal(t, []tabfmt.Format{
		tabfmt.Table, tabfmt.Markdown, tabfmt.CSV, tabfmt.TSV,
		tabfmt.HTML, tabfmt.JSON, tabfmt.JSONL, tabfmt.YAML,
	}, got)
	// Returned slice must be a copy.
	got[0] = "modified"
	assert.Equal(t, tabfmt.Table, tabfmt.Formats()[0])
}

func TestFormatString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "json", tabfmt.JSON.String())
	assert.Equal(t, "table", tabfmt.Table.String())
}

func TestParseBorder(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  tabfmt.BorderStyle
	}{
		"rounded":    {input: "rounded", want: tabfmt.BorderRounded},
		"none":       {input: "none", want: tabfmt.BorderNone},
		"ascii":      {input: "ascii", want: tabfmt.BorderASCII},
		"heavy":      {input: "heavy", want: tabfmt.BorderHeavy},
		"double":     {input: "double", want: tabfmt.BorderDouble},
		"mixed case": {input: " ASCII ", want: tabfmt.BorderASCII},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabfmt.ParseBorder(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, must(tabfmt.ParseBorder(got.String())))
		})
	}
}

func TestParseBorderUnknown(t *testing.T) {
	t.Parallel()
	_, err := tabfmt.ParseBorder("dotted")
	require.ErrorIs(t, err, tabfmt.ErrInvalidArgument)
	assert.Equal(t, "BorderStyle(42)", tabfmt.BorderStyle(42).String())
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
