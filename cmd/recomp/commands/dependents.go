package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/recomp/internal/app"
)

func (c *CLI) newDependentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dependents [classes...]",
		Short: "List what must be recompiled after the given classes changed",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			constants, _ := cmd.Flags().GetStringArray("constant")

			report, err := c.app.Dependents(cmd.Context(), app.DependentsQuery{
				Classes:   args,
				Constants: constants,
			})
			if err != nil {
				return err
			}
			return printDependents(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().StringArrayP("constant", "c", nil,
		"Changed constant, as a 32-bit origin hash or pkg.Owner#FIELD (repeatable)")
	return cmd
}
