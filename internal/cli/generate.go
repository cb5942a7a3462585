package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bjaus/tabfmt"
	"github.com/bjaus/tabfmt/synth"
)

func newGenerateCmd(a *App, g *globals) *cobra.Command {
	var (
		rows, cols int
		seed       uint64
		rf         renderFlags
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a reproducible synthetic dataset of string, int and bool columns",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			frame, err := synth.MixedFrame(rows, cols, synth.WithSeed(seed))
			if err != nil {
				return err
			}
			slog.Debug("generated frame", "rows", rows, "cols", cols, "seed", seed)
			t, err := tabfmt.Tabulate(frame)
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
	fs.IntVar(&rows, "rows", 10, "number of rows")
	fs.IntVar(&cols, "cols", 6, "number of columns")
	fs.Uint64Var(&seed, "seed", synth.DefaultSeed, "random seed")
	addRenderFlags(fs, &rf)
	return cmd
}
