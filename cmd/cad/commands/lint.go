package commands

import (
	"errors"
	"fmt"

	"github.com/shirhatti/cad/internal/core/domain"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newLintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint [models...]",
		Short: "Check models for Customizer compliance",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			strict, _ := cmd.Flags().GetBool("strict")
			quiet, _ := cmd.Flags().GetBool("quiet")

			results, err := c.app.Lint(cmd.Context(), options(cmd, args))
			if err != nil && !errors.Is(err, domain.ErrLintFailed) {
				return err
			}

			out := cmd.OutOrStdout()
			warnings := 0
			for _, r := range results {
				for _, f := range r.Errors {
					_, _ = fmt.Fprintln(out, f)
				}
				if !quiet {
					for _, f := range r.Warnings {
						_, _ = fmt.Fprintln(out, f)
					}
				}
				warnings += len(r.Warnings)
			}

			if strict && err == nil && warnings > 0 {
				return zerr.With(domain.ErrLintFailed, "warnings", warnings)
			}
			return err
		},
	}
	cmd.Flags().Bool("strict", false, "Treat warnings as errors")
	cmd.Flags().Bool("quiet", false, "Only show errors, not warnings")
	return cmd
}
