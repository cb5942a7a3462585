package cli

import (
	"github.com/spf13/cobra"

	"github.com/bjaus/tabfmt/internal/config"
	"github.com/bjaus/tabfmt/internal/logging"
	"github.com/bjaus/tabfmt/internal/ui"
)

// globals holds root flags and the state resolved from them before any
// subcommand runs.
type globals struct {
	configPath string
	debug      bool
	logFormat  string
	color      string
	output     string

	cfg       *config.Config
	colorMode ui.ColorMode
}

func newRootCmd(a *App) *cobra.Command {
	g := &globals{cfg: &config.Config{}}

	root := &cobra.Command{
		Use:           "tabfmt",
		Short:         "Print tabular data and numbers in human-readable form",
		Version:       a.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := logging.Setup(g.debug, g.logFormat, a.Stderr); err != nil {
				return &usageError{err: err}
			}

			cfg, err := config.Load(g.configPath)
			if err != nil {
				return err
			}
			g.cfg = cfg

			color := g.color
			if !cmd.Flags().Changed("color") && cfg.Color != "" {
				color = cfg.Color
			}
			mode, err := ui.ParseColorMode(color)
			if err != nil {
				return &usageError{err: err}
			}
			g.colorMode = mode
			return nil
		},
	}
	root.SetIn(a.Stdin)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "config file (default $"+config.EnvPath+" or ~/.config/tabfmt/config.yaml)")
	pf.BoolVar(&g.debug, "debug", false, "enable debug logging")
	pf.StringVar(&g.logFormat, "log-format", logging.FormatText, "log format: text|json")
	pf.StringVar(&g.color, "color", "auto", "color output: auto|always|never")
	pf.StringVarP(&g.output, "output", "o", "", "write output to this file instead of stdout")

	root.AddCommand(
		newShowCmd(a, g),
		newMagnitudeCmd(a, g),
		newDurationCmd(a, g),
		newGenerateCmd(a, g),
		newBenchCmd(a, g),
	)
	return root
}
