package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/bjaus/tabfmt"
	"github.com/bjaus/tabfmt/internal/config"
)

// renderFlags are shared by every command that prints a table.
type renderFlags struct {
	format    string
	border    string
	title     string
	caption   string
	numbered  bool
	humanize  bool
	precision int
	maxWidth  int
}

func addRenderFlags(fs *pflag.FlagSet, rf *renderFlags) {
	fs.StringVarP(&rf.format, "format", "f", string(tabfmt.Table), "output format: table|markdown|csv|tsv|html|json|jsonl|yaml|go-template=<tmpl>")
	fs.StringVar(&rf.border, "border", tabfmt.BorderRounded.String(), "table border: rounded|ascii|heavy|double|none")
	fs.StringVar(&rf.title, "title", "", "title above the table")
	fs.StringVar(&rf.caption, "caption", "", "line below the table")
	fs.BoolVarP(&rf.numbered, "numbered", "n", false, "prepend a row number column")
	fs.BoolVar(&rf.humanize, "humanize", false, "print numeric cells with K/M/B/T suffixes")
	fs.IntVarP(&rf.precision, "precision", "p", tabfmt.DefaultPrecision, "decimal places for humanized values")
	fs.IntVar(&rf.maxWidth, "max-width", 0, "truncate cells wider than this (0 = no limit)")
}

// precisionFrom resolves --precision against the config file.
func precisionFrom(fs *pflag.FlagSet, flagValue int, cfg *config.Config) (int, error) {
	p := flagValue
	if !fs.Changed("precision") && cfg.Precision != nil {
		p = *cfg.Precision
	}
	if p < 0 {
		return 0, &usageError{err: fmt.Errorf("precision must not be negative, got %d", p)}
	}
	return p, nil
}

// resolve turns the flags, falling back to config values for flags the user
// did not set, into a format and render options.
func (rf *renderFlags) resolve(cmd *cobra.Command, cfg *config.Config, width int) (tabfmt.Format, []tabfmt.RenderOption, error) {
	fs := cmd.Flags()

	name := rf.format
	if !fs.Changed("format") && cfg.Format != "" {
		name = cfg.Format
	}
	format, err := tabfmt.ParseFormat(name)
	if err != nil {
		return "", nil, &usageError{err: err}
	}

	borderName := rf.border
	if !fs.Changed("border") && cfg.Border != "" {
		borderName = cfg.Border
	}
	border, err := tabfmt.ParseBorder(borderName)
	if err != nil {
		return "", nil, &usageError{err: err}
	}

	precision, err := precisionFrom(fs, rf.precision, cfg)
	if err != nil {
		return "", nil, err
	}

	opts := []tabfmt.RenderOption{tabfmt.WithBorder(border)}
	if rf.title != "" {
		opts = append(opts, tabfmt.WithTitle(rf.title))
	}
	if rf.caption != "" {
		opts = append(opts, tabfmt.WithCaption(rf.caption))
	}
	if rf.numbered {
		opts = append(opts, tabfmt.WithRowNumbers("#"))
	}
	if rf.humanize {
		opts = append(opts, tabfmt.WithCellFormatter(tabfmt.HumanizeNumbers(precision)))
	}
	if rf.maxWidth > 0 {
		widths := make([]int, width)
		for i := range widths {
			widths[i] = rf.maxWidth
		}
		opts = append(opts, tabfmt.WithMaxWidths(widths...))
	}
	return format, opts, nil
}
