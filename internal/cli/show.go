package cli

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"

	"github.com/bjaus/tabfmt"
)

// source describes where show reads its frame from.
type source struct {
	path   string
	input  string
	comma  string
	sqlite string
	query  string
}

func newShowCmd(a *App, g *globals) *cobra.Command {
	var (
		src         source
		top, bottom int
		rf          renderFlags
	)

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Print a CSV, JSON, YAML or SQLite dataset as a table",
		Long: `Read a dataset and print it as a table or another format.

Input is read from the file argument, or stdin when it is omitted or "-".
The input kind follows the file extension (.csv, .tsv, .json, .yaml, .yml)
unless --input is given. Use --sqlite with --query to read a SQLite database.`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("top") && flags.Changed("bottom") {
				return fmt.Errorf("%w: --top and --bottom cannot be used together", tabfmt.ErrInvalidArgument)
			}
			if len(args) == 1 {
				if src.sqlite != "" {
					return &usageError{err: fmt.Errorf("a file argument cannot be used with --sqlite")}
				}
				src.path = args[0]
			}

			frame, err := a.loadFrame(cmd.Context(), src)
			if err != nil {
				return err
			}
			slog.Debug("loaded frame", "rows", frame.NumRows(), "cols", frame.NumCols())

			var window []tabfmt.WindowOption
			if flags.Changed("top") {
				window = append(window, tabfmt.Top(top))
			}
			if flags.Changed("bottom") {
				window = append(window, tabfmt.Bottom(bottom))
			}
			t, err := tabfmt.Tabulate(frame, window...)
			if err != nil {
				return err
			}

			format, opts, err := rf.resolve(cmd, g.cfg, len(t.Names))
			if err != nil {
				return err
			}
			return a.writeTable(g, t, format, opts)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&src.input, "input", "auto", "input kind: auto|csv|tsv|json|yaml")
	fs.StringVar(&src.comma, "comma", "", "CSV field delimiter (default comma, tab for tsv)")
	fs.StringVar(&src.sqlite, "sqlite", "", "SQLite database file to query")
	fs.StringVar(&src.query, "query", "", "SQL query to run against --sqlite")
	fs.IntVar(&top, "top", 0, "show only the first N rows")
	fs.IntVar(&bottom, "bottom", 0, "show only the last N rows")
	addRenderFlags(fs, &rf)
	return cmd
}

func (a *App) loadFrame(ctx context.Context, src source) (*tabfmt.Frame, error) {
	if src.sqlite != "" {
		return loadSQLite(ctx, src)
	}
	if src.query != "" {
		return nil, &usageError{err: fmt.Errorf("--query requires --sqlite")}
	}

	kind := strings.ToLower(src.input)
	if kind == "" || kind == "auto" {
		kind = inputKind(src.path)
	}

	var r io.Reader = a.Stdin
	if src.path != "" && src.path != "-" {
		f, err := os.Open(src.path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	switch kind {
	case "csv", "tsv":
		var opts []tabfmt.ReadOption
		if kind == "tsv" {
			opts = append(opts, tabfmt.WithComma('\t'))
		}
		if src.comma != "" {
			c, size := utf8.DecodeRuneInString(src.comma)
			if size != len(src.comma) {
				return nil, &usageError{err: fmt.Errorf("--comma must be a single character, got %q", src.comma)}
			}
			opts = append(opts, tabfmt.WithComma(c))
		}
		return tabfmt.ReadCSV(r, opts...)
	case "json", "yaml", "yml":
		return tabfmt.ReadRecords(r)
	default:
		return nil, &usageError{err: fmt.Errorf("unknown input kind %q (expected auto|csv|tsv|json|yaml)", src.input)}
	}
}

// inputKind guesses the input kind from a file extension. Stdin is CSV.
func inputKind(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv":
		return "tsv"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "csv"
	}
}

func loadSQLite(ctx context.Context, src source) (*tabfmt.Frame, error) {
	if src.query == "" {
		return nil, &usageError{err: fmt.Errorf("--sqlite requires --query")}
	}
	if _, err := os.Stat(src.sqlite); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite3", src.sqlite)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", src.sqlite, err)
	}
	defer db.Close()
	slog.Debug("querying sqlite", "path", src.sqlite, "query", src.query)
	return tabfmt.ReadSQL(ctx, db, src.query)
}

// usageArgs marks positional argument errors as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}
