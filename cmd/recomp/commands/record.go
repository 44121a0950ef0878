package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/recomp/internal/app"
)

func (c *CLI) newRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record the outputs of a finished compile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			factsDir, _ := cmd.Flags().GetString("facts")
			constants, _ := cmd.Flags().GetString("constants")
			annotations, _ := cmd.Flags().GetString("annotations")
			removed, _ := cmd.Flags().GetStringArray("removed")
			full, _ := cmd.Flags().GetBool("full")

			_, err := c.app.Record(cmd.Context(), app.RecordInput{
				FactsDir:        factsDir,
				ConstantsFile:   constants,
				AnnotationsFile: annotations,
				Removed:         removed,
				Full:            full,
			})
			return err
		},
	}
	cmd.Flags().StringP("facts", "f", "", "Directory holding the *.facts.yaml files of the compiled classes")
	cmd.Flags().String("constants", "", "Constant usage file of the compiled classes")
	cmd.Flags().String("annotations", "", "Annotation processing report of the compile")
	cmd.Flags().StringArray("removed", nil, "Class deleted since the previous compile (repeatable)")
	cmd.Flags().Bool("full", false, "Discard the previous state instead of updating it")
	_ = cmd.MarkFlagRequired("facts")
	return cmd
}
