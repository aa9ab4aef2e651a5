package commands

import (
	"errors"
	"fmt"

	"github.com/shirhatti/cad/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test [models...]",
		Short: "Run _test.scad assertion tests",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := options(cmd, args)
			opts.RenderBinary, _ = cmd.Flags().GetString("openscad")

			results, err := c.app.Test(cmd.Context(), opts)
			if err != nil && !errors.Is(err, domain.ErrTestsFailed) {
				return err
			}

			out := cmd.OutOrStdout()
			passed := 0
			for _, r := range results {
				if r.Passed {
					passed++
					_, _ = fmt.Fprintf(out, "PASS %s\n", r.Model.Name)
				} else {
					_, _ = fmt.Fprintf(out, "FAIL %s: %s\n", r.Model.Name, r.Reason)
				}
				for _, echo := range r.Echoes {
					_, _ = fmt.Fprintf(out, "  %s\n", echo)
				}
			}
			_, _ = fmt.Fprintf(out, "%d/%d tests passed\n", passed, len(results))
			return err
		},
	}
	cmd.Flags().String("openscad", "", "Path to the OpenSCAD binary (default from PATH)")
	return cmd
}
