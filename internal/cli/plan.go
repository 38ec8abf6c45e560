package cli

import (
	"io"

	"github.com/spf13/cobra"
)

func planCmd(stdout, stderr io.Writer) *cobra.Command {
	f := &splitFlags{}

	c := &cobra.Command{
		Use:   "plan",
		Short: "Show how the dataset would be split, without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd, f, stdout, stderr)
		},
	}

	bindSplitFlags(c, f)
	return c
}
