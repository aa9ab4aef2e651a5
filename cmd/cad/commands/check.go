package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [models...]",
		Short: "Validate that models compile without producing artifacts",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options(cmd, args)
			opts.RenderBinary, _ = cmd.Flags().GetString("openscad")
			return c.app.Check(cmd.Context(), opts)
		},
	}
	cmd.Flags().String("openscad", "", "Path to the OpenSCAD binary (default from PATH)")
	return cmd
}
