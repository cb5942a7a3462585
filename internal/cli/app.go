// Package cli implements the tabfmt command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// App owns CLI wiring and execution configuration.
type App struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Version string
}

// NewApp constructs an App bound to the process streams.
func NewApp() *App {
	return &App{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Version: "dev",
	}
}

// Execute runs the CLI with the provided args. Errors are printed to Stderr
// and returned so the caller can pick an exit code with [ExitCode].
func (a *App) Execute(ctx context.Context, args []string) error {
	root := newRootCmd(a)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(a.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// RootCommand exposes the root Cobra command for embedding and tests.
func (a *App) RootCommand() *cobra.Command {
	return newRootCmd(a)
}
