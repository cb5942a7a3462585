package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/bjaus/tabfmt"
)

func newMagnitudeCmd(a *App, g *globals) *cobra.Command {
	return newValueCmd(a, g, valueCmd{
		use:    "magnitude <number>...",
		short:  "Format numbers with K/M/B/T suffixes",
		format: tabfmt.FormatMagnitude,
		parse:  parseNumber,
	})
}

func newDurationCmd(a *App, g *globals) *cobra.Command {
	return newValueCmd(a, g, valueCmd{
		use:    "duration <seconds|duration>...",
		short:  "Format seconds (or Go durations like 1m30s) in hr/min/s/ms/μs/ns",
		format: tabfmt.FormatDuration,
		parse:  parseDuration,
	})
}

type valueCmd struct {
	use    string
	short  string
	format func(any, int) (string, error)
	parse  func(string) (any, error)
}

func newValueCmd(a *App, g *globals, vc valueCmd) *cobra.Command {
	var precision int
	cmd := &cobra.Command{
		Use:   vc.use,
		Short: vc.short,
		Long:  vc.short + ".\n\nPass negative values after \"--\" so they are not read as flags.",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := precisionFrom(cmd.Flags(), precision, g.cfg)
			if err != nil {
				return err
			}
			lines := make([]string, len(args))
			for i, arg := range args {
				v, err := vc.parse(arg)
				if err != nil {
					return err
				}
				if lines[i], err = vc.format(v, p); err != nil {
					return err
				}
			}
			return a.emit(g, func(w io.Writer) error {
				for _, line := range lines {
					if _, err := fmt.Fprintln(w, line); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&precision, "precision", "p", tabfmt.DefaultPrecision, "decimal places")
	return cmd
}

// parseNumber keeps integers as int64 so they print bare below one thousand.
func parseNumber(s string) (any, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q is not a number", tabfmt.ErrTypeKind, s)
}

func parseDuration(s string) (any, error) {
	if v, err := parseNumber(s); err == nil {
		return v, nil
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %q is neither a number of seconds nor a duration", tabfmt.ErrTypeKind, s)
}
