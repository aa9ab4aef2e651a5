package commands

import (
	"github.com/shirhatti/cad/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [models...]",
		Short: "List discovered models",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tests, _ := cmd.Flags().GetBool("tests")
			libs, _ := cmd.Flags().GetBool("libs")
			all, _ := cmd.Flags().GetBool("all")
			outputNames, _ := cmd.Flags().GetBool("output-names")
			nulSep, _ := cmd.Flags().GetBool("print0")

			filter := domain.ModelFilter{
				OnlyTests:        tests,
				IncludeTests:     all,
				IncludeLibs:      libs || all,
				IncludeConstants: all,
				IncludeReference: all,
			}

			models, err := c.app.List(cmd.Context(), options(cmd, args), filter)
			if err != nil {
				return err
			}

			sep := "\n"
			if nulSep {
				sep = "\x00"
			}
			out := cmd.OutOrStdout()
			for _, m := range models {
				line := m.Path.String()
				if outputNames {
					line = m.Name.String()
				}
				if _, err := out.Write([]byte(line + sep)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("tests", false, "List only _test.scad files")
	cmd.Flags().Bool("libs", false, "Include _lib.scad files")
	cmd.Flags().Bool("all", false, "Include every .scad file")
	cmd.Flags().Bool("output-names", false, "Print flattened output names instead of paths")
	cmd.Flags().BoolP("print0", "0", false, "Separate entries with NUL for xargs -0")
	return cmd
}
