package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newSliceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slice",
		Short: "Slice rendered meshes to 3MF, cached",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := options(cmd, nil)
			opts.OutputDir, _ = cmd.Flags().GetString("output-dir")
			opts.SliceBinary, _ = cmd.Flags().GetString("orca-slicer")
			return c.app.Slice(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringP("output-dir", "o", "", "Directory holding meshes and receiving sliced artifacts")
	cmd.Flags().String("orca-slicer", "", "Path to the OrcaSlicer binary (default from PATH)")
	return cmd
}
