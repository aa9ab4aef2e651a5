// Package commands implements the CLI commands for the cad pipeline tool.
package commands

import (
	"context"
	"io"

	"github.com/shirhatti/cad/internal/app"
	"github.com/shirhatti/cad/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for cad.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cad",
		Short:         "Cached render and slice pipeline for parametric CAD models",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the configuration file (default cad.yaml)")
	rootCmd.PersistentFlags().IntP("jobs", "j", 0, "Maximum concurrent tool invocations (default NumCPU)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newSliceCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newTestCmd())
	rootCmd.AddCommand(c.newLintCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut redirects command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

// options collects the persistent flags plus the positional model names.
func options(cmd *cobra.Command, args []string) app.Options {
	config, _ := cmd.Flags().GetString("config")
	jobs, _ := cmd.Flags().GetInt("jobs")
	return app.Options{
		ConfigPath: config,
		Jobs:       jobs,
		Models:     args,
	}
}
