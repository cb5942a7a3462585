package tabfmt

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type renderConfig struct {
	border       BorderStyle
	title        string
	caption      string
	aligns       []Alignment
	footer       []string
	numbered     bool
	numberHeader string
	maxWidths    []int
	wrapWidths   []int
	pageSize     int
	groupBy      int
	styles       []func(string) string
	headerStyle  func(string) string
	cell         CellFormatter
	delimiter    rune
	indent       string
}

// RenderOption customizes how a [DisplayTable] is written.
type RenderOption func(*renderConfig)

func newRenderConfig(opts []RenderOption) *renderConfig {
	cfg := &renderConfig{
		border:    BorderRounded,
		groupBy:   -1,
		delimiter: ',',
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.cell == nil {
		cfg.cell = func(_ int, _ Kind, v any) string { return cellText(v) }
	}
	return cfg
}

// WithBorder sets the table border style. Default: BorderRounded.
func WithBorder(b BorderStyle) RenderOption {
	return func(c *renderConfig) { c.border = b }
}

// WithTitle renders a title above the table, or a caption element in HTML.
func WithTitle(title string) RenderOption {
	return func(c *renderConfig) { c.title = title }
}

// WithCaption renders a line below the table.
func WithCaption(caption string) RenderOption {
	return func(c *renderConfig) { c.caption = caption }
}

// WithAlignments overrides per-column alignment. Columns without an entry keep
// the default: right for numeric kinds, left otherwise. Markdown and HTML use
// the same alignments.
func WithAlignments(aligns ...Alignment) RenderOption {
	return func(c *renderConfig) { c.aligns = aligns }
}

// WithFooter renders a footer row below the table.
func WithFooter(cells ...string) RenderOption {
	return func(c *renderConfig) { c.footer = cells }
}

// WithRowNumbers prepends a 1-based row number column titled header.
func WithRowNumbers(header string) RenderOption {
	return func(c *renderConfig) { c.numbered, c.numberHeader = true, header }
}

// WithMaxWidths caps column widths; longer cells are truncated with "...".
// A zero entry means no limit for that column.
func WithMaxWidths(widths ...int) RenderOption {
	return func(c *renderConfig) { c.maxWidths = widths }
}

// WithWrapWidths wraps cells wider than the given width onto several visual
// lines of the same row. A zero entry means no wrapping for that column.
func WithWrapWidths(widths ...int) RenderOption {
	return func(c *renderConfig) { c.wrapWidths = widths }
}

// WithPageSize repeats the header row every n data rows.
func WithPageSize(n int) RenderOption {
	return func(c *renderConfig) { c.pageSize = n }
}

// WithGroupBy inserts a separator line whenever the text of column col
// differs from the previous row.
func WithGroupBy(col int) RenderOption {
	return func(c *renderConfig) { c.groupBy = col }
}

// WithStyles sets per-column style functions. Each wraps the fully padded
// cell string, so ANSI codes never affect width calculations. Nil entries
// mean no styling.
func WithStyles(styles ...func(string) string) RenderOption {
	return func(c *renderConfig) { c.styles = styles }
}

// WithHeaderStyle styles header cells instead of the column styles.
func WithHeaderStyle(style func(string) string) RenderOption {
	return func(c *renderConfig) { c.headerStyle = style }
}

// WithCellFormatter replaces the default cell text.
func WithCellFormatter(f CellFormatter) RenderOption {
	return func(c *renderConfig) { c.cell = f }
}

// WithDelimiter sets the CSV field delimiter. Default: comma.
func WithDelimiter(r rune) RenderOption {
	return func(c *renderConfig) { c.delimiter = r }
}

// WithIndent indents JSON and YAML output. Default: compact JSON and the
// YAML encoder's default indent.
func WithIndent(indent string) RenderOption {
	return func(c *renderConfig) { c.indent = indent }
}

// Write renders t in format f to w.
func (t DisplayTable) Write(w io.Writer, f Format, opts ...RenderOption) error {
	cfg := newRenderConfig(opts)
	switch f {
	case Table:
		return writeTable(w, t, cfg)
	case Markdown:
		return writeMarkdown(w, t, cfg)
	case CSV:
		return writeCSV(w, t, cfg)
	case TSV:
		return writeTSV(w, t, cfg)
	case HTML:
		return writeHTML(w, t, cfg)
	case JSON:
		return writeJSON(w, t, cfg)
	case JSONL:
		return writeJSONL(w, t, cfg)
	case YAML:
		return writeYAML(w, t, cfg)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, t)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders t in format f and returns the bytes.
func (t DisplayTable) Marshal(f Format, opts ...RenderOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Write(&buf, f, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// String renders t as a rounded-border table.
func (t DisplayTable) String() string {
	var sb strings.Builder
	if err := t.Write(&sb, Table); err != nil {
		return fmt.Sprintf("%%!(tabfmt: %v)", err)
	}
	return sb.String()
}

// grid is the text form of a DisplayTable shared by the text formats, with
// row numbering already applied.
type grid struct {
	header []string
	rows   [][]string
	footer []string
	aligns []Alignment
	groups []string
}

func newGrid(t DisplayTable, cfg *renderConfig) grid {
	g := grid{
		header: append([]string(nil), t.Names...),
		rows:   make([][]string, len(t.Rows)),
		footer: append([]string(nil), cfg.footer...),
		aligns: make([]Alignment, len(t.Names)),
	}
	kinds := make([]Kind, len(t.Names))
	for c := range t.Names {
		kinds[c] = t.Kind(c)
		if kinds[c].Numeric() {
			g.aligns[c] = AlignRight
		}
	}
	copy(g.aligns, cfg.aligns)
	if len(cfg.aligns) > len(g.aligns) {
		g.aligns = append(g.aligns, cfg.aligns[len(g.aligns):]...)
	}

	for r, row := range t.Rows {
		cells := make([]string, len(row))
		for c, v := range row {
			kind := KindAny
			if c < len(kinds) {
				kind = kinds[c]
			}
			cells[c] = cfg.cell(c, kind, v)
		}
		g.rows[r] = cells
	}

	if cfg.groupBy >= 0 && cfg.groupBy < len(t.Names) {
		g.groups = make([]string, len(g.rows))
		for r, cells := range g.rows {
			g.groups[r] = cellAt(cells, cfg.groupBy)
		}
	}

	if cfg.numbered {
		g.header = append([]string{cfg.numberHeader}, g.header...)
		for r, cells := range g.rows {
			g.rows[r] = append([]string{strconv.Itoa(r + 1)}, cells...)
		}
		if len(g.footer) > 0 {
			g.footer = append([]string{""}, g.footer...)
		}
		g.aligns = append([]Alignment{AlignRight}, g.aligns...)
	}
	return g
}

// shiftNumbered prepends a zero entry to a per-column setting when the row
// number column is present.
func shiftNumbered[T any](cfg *renderConfig, vals []T) []T {
	if !cfg.numbered || len(vals) == 0 {
		return vals
	}
	var zero T
	return append([]T{zero}, vals...)
}

func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}
