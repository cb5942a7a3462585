package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjaus/tabfmt"
	"github.com/bjaus/tabfmt/bench"
	"github.com/bjaus/tabfmt/synth"
)

func newBenchCmd(a *App, g *globals) *cobra.Command {
	var (
		rows, cols, runs int
		seed             uint64
		rf               renderFlags
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time tabulating and rendering a synthetic dataset",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Timings are already rendered as durations.
			if rf.humanize {
				return &usageError{err: fmt.Errorf("--humanize is not supported by bench")}
			}
			frame, err := synth.MixedFrame(rows, cols, synth.WithSeed(seed))
			if err != nil {
				return err
			}
			full, err := tabfmt.Tabulate(frame)
			if err != nil {
				return err
			}

			// Renderers write to os.Stdout so the harness can discard it.
			cases := []struct {
				name string
				fn   func()
			}{
				{"tabulate", func() { _, _ = tabfmt.Tabulate(frame) }},
				{"tabulate top 10", func() { _, _ = tabfmt.Tabulate(frame, tabfmt.Top(10)) }},
				{"tabulate bottom 10", func() { _, _ = tabfmt.Tabulate(frame, tabfmt.Bottom(10)) }},
				{"render table", func() { _ = full.Write(os.Stdout, tabfmt.Table) }},
				{"render csv", func() { _ = full.Write(os.Stdout, tabfmt.CSV) }},
				{"render json", func() { _ = full.Write(os.Stdout, tabfmt.JSON) }},
			}

			results := make([]bench.Result, 0, len(cases))
			for _, c := range cases {
				res, err := bench.Run(cmd.Context(), c.name, runs, c.fn)
				if err != nil {
					return err
				}
				slog.Debug("benchmark done", "name", res.Name, "mean", res.Mean)
				results = append(results, res)
			}

			format, opts, err := rf.resolve(cmd, g.cfg, 6)
			if err != nil {
				return err
			}
			return a.emit(g, func(w io.Writer) error {
				return bench.Render(w, results, format, opts...)
			})
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&rows, "rows", 1000, "rows in the synthetic dataset")
	fs.IntVar(&cols, "cols", 9, "columns in the synthetic dataset")
	fs.IntVar(&runs, "runs", 5, "timed runs per benchmark")
	fs.Uint64Var(&seed, "seed", synth.DefaultSeed, "random seed")
	addRenderFlags(fs, &rf)
	return cmd
}
