package tabfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// layout is a grid with resolved column widths and styling.
type layout struct {
	grid
	widths      []int
	wrapWidths  []int
	styles      []func(string) string
	headerStyle func(string) string
	pageSize    int
}

func newLayout(t DisplayTable, cfg *renderConfig) *layout {
	g := newGrid(t, cfg)
	numCols := colCount(g.header, g.rows, g.footer)
	widths := computeWidths(numCols, g.header, g.rows, g.footer)

	for i, max := range shiftNumbered(cfg, cfg.maxWidths) {
		if i < numCols && max > 0 && widths[i] > max {
			widths[i] = max
		}
	}

	g.aligns = extendAligns(g.aligns, numCols)
	return &layout{
		grid:        g,
		widths:      widths,
		wrapWidths:  shiftNumbered(cfg, cfg.wrapWidths),
		styles:      extendStyles(shiftNumbered(cfg, cfg.styles), numCols),
		headerStyle: cfg.headerStyle,
		pageSize:    cfg.pageSize,
	}
}

func writeTable(w io.Writer, t DisplayTable, cfg *renderConfig) error {
	l := newLayout(t, cfg)
	if len(l.widths) == 0 {
		return nil
	}

	var err error
	if cfg.border == BorderNone {
		err = l.renderPlain(w)
	} else {
		bc, ok := borderSets[cfg.border]
		if !ok {
			bc = borderSets[BorderRounded]
		}
		err = l.renderBordered(w, cfg.title, bc)
	}
	if err != nil {
		return err
	}

	if cfg.caption != "" {
		if _, err := fmt.Fprintln(w, cfg.caption); err != nil {
			return err
		}
	}
	return nil
}

func colCount(header []string, rows [][]string, footer []string) int {
	n := len(header)
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	if len(footer) > n {
		n = len(footer)
	}
	return n
}

func computeWidths(numCols int, header []string, rows [][]string, footer []string) []int {
	widths := make([]int, numCols)
	measure := func(cells []string) {
		for i, cell := range cells {
			if w := runewidth.StringWidth(cell); i < numCols && w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}
	measure(footer)
	return widths
}

func extendAligns(aligns []Alignment, numCols int) []Alignment {
	if len(aligns) >= numCols {
		return aligns[:numCols]
	}
	extended := make([]Alignment, numCols)
	copy(extended, aligns)
	return extended
}

func extendStyles(styles []func(string) string, numCols int) []func(string) string {
	if len(styles) >= numCols {
		return styles[:numCols]
	}
	extended := make([]func(string) string, numCols)
	copy(extended, styles)
	return extended
}

// --- Cell wrapping ---

func wrapCell(s string, width int) []string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	var lines []string
	for len(s) > 0 {
		line := runewidth.Truncate(s, width, "")
		if line == "" {
			// A rune wider than the column still has to advance.
			line = string([]rune(s)[0])
		}
		lines = append(lines, line)
		s = s[len(line):]
	}
	return lines
}

func wrapRow(cells []string, widths []int, wrapWidths []int) [][]string {
	wrapped := make([][]string, len(widths))
	for i, width := range widths {
		cell := cellAt(cells, i)
		ww := 0
		if i < len(wrapWidths) {
			ww = wrapWidths[i]
		}
		if ww > 0 && ww < width {
			wrapped[i] = wrapCell(cell, ww)
		} else {
			wrapped[i] = []string{cell}
		}
	}
	return wrapped
}

func maxLines(wrapped [][]string) int {
	n := 1
	for _, lines := range wrapped {
		if len(lines) > n {
			n = len(lines)
		}
	}
	return n
}

// lines returns the visual lines of one row, every cell already truncated,
// padded and styled.
func (l *layout) lines(cells []string, header bool) [][]string {
	wrapped := wrapRow(cells, l.widths, l.wrapWidths)
	out := make([][]string, maxLines(wrapped))
	for line := range out {
		parts := make([]string, len(l.widths))
		for i, width := range l.widths {
			cell := ""
			if line < len(wrapped[i]) {
				cell = wrapped[i][line]
			}
			formatted := formatTableCell(cell, width, l.aligns[i])
			switch {
			case header && l.headerStyle != nil:
				formatted = l.headerStyle(formatted)
			case l.styles[i] != nil:
				formatted = l.styles[i](formatted)
			}
			parts[i] = formatted
		}
		out[line] = parts
	}
	return out
}

func (l *layout) groupBreak(i int) bool {
	return len(l.groups) > 0 && i > 0 && l.groups[i] != l.groups[i-1]
}

func (l *layout) pageBreak(i int) bool {
	return l.pageSize > 0 && len(l.header) > 0 && i > 0 && i%l.pageSize == 0
}

// --- Plain table (BorderNone) ---

func (l *layout) renderPlain(w io.Writer) error {
	if len(l.header) > 0 {
		if err := l.plainRow(w, l.header, true); err != nil {
			return err
		}
		if err := l.plainSep(w); err != nil {
			return err
		}
	}
	for i, row := range l.rows {
		if l.groupBreak(i) {
			if err := l.plainSep(w); err != nil {
				return err
			}
		}
		if l.pageBreak(i) {
			if err := l.plainSep(w); err != nil {
				return err
			}
			if err := l.plainRow(w, l.header, true); err != nil {
				return err
			}
			if err := l.plainSep(w); err != nil {
				return err
			}
		}
		if err := l.plainRow(w, row, false); err != nil {
			return err
		}
	}
	if len(l.footer) > 0 {
		if err := l.plainSep(w); err != nil {
			return err
		}
		if err := l.plainRow(w, l.footer, false); err != nil {
			return err
		}
	}
	return nil
}

func (l *layout) plainSep(w io.Writer) error {
	sep := make([]string, len(l.widths))
	for i, width := range l.widths {
		sep[i] = strings.Repeat("-", width)
	}
	_, err := fmt.Fprintln(w, strings.Join(sep, "  "))
	return err
}

func (l *layout) plainRow(w io.Writer, cells []string, header bool) error {
	for _, parts := range l.lines(cells, header) {
		text := strings.TrimRight(strings.Join(parts, "  "), " ")
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
	}
	return nil
}

// --- Bordered table ---

func (l *layout) renderBordered(w io.Writer, title string, bc borderChars) error {
	if title != "" {
		// Full-width top border (no column separators).
		if err := l.hline(w, bc.topLeft, bc.horizontal, bc.horizontal, bc.topRight); err != nil {
			return err
		}
		inner := tableInnerWidth(l.widths) - 2 // subtract 1-space padding on each side
		padded := alignCell(title, inner, AlignCenter)
		if _, err := fmt.Fprintf(w, "%s %s %s\n", bc.vertical, padded, bc.vertical); err != nil {
			return err
		}
		if err := l.hline(w, bc.leftTee, bc.horizontal, bc.topTee, bc.rightTee); err != nil {
			return err
		}
	} else if err := l.hline(w, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}

	divider := func() error { return l.hline(w, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee) }

	if len(l.header) > 0 {
		if err := l.borderedRow(w, l.header, bc.vertical, true); err != nil {
			return err
		}
		if err := divider(); err != nil {
			return err
		}
	}

	for i, row := range l.rows {
		if l.groupBreak(i) {
			if err := divider(); err != nil {
				return err
			}
		}
		if l.pageBreak(i) {
			if err := divider(); err != nil {
				return err
			}
			if err := l.borderedRow(w, l.header, bc.vertical, true); err != nil {
				return err
			}
			if err := divider(); err != nil {
				return err
			}
		}
		if err := l.borderedRow(w, row, bc.vertical, false); err != nil {
			return err
		}
	}

	if len(l.footer) > 0 {
		if err := divider(); err != nil {
			return err
		}
		if err := l.borderedRow(w, l.footer, bc.vertical, false); err != nil {
			return err
		}
	}

	return l.hline(w, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

// tableInnerWidth returns the total character width between the outer vertical
// borders of a bordered table. Each cell contributes its width plus 2 (one
// space of padding on each side), and cells are separated by a single vertical
// border character.
func tableInnerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

func (l *layout) hline(w io.Writer, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range l.widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(l.widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func (l *layout) borderedRow(w io.Writer, cells []string, vert string, header bool) error {
	for _, parts := range l.lines(cells, header) {
		line := vert + " " + strings.Join(parts, " "+vert+" ") + " " + vert
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatTableCell(s string, width int, align Alignment) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	return alignCell(s, width, align)
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
