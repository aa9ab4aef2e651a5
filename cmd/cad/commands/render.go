package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [models...]",
		Short: "Render models to STL meshes and preview images, cached",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options(cmd, args)
			opts.OutputDir, _ = cmd.Flags().GetString("output-dir")
			opts.RenderBinary, _ = cmd.Flags().GetString("openscad")
			return c.app.Render(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringP("output-dir", "o", "", "Directory receiving rendered artifacts")
	cmd.Flags().String("openscad", "", "Path to the OpenSCAD binary (default from PATH)")
	return cmd
}
