package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/datasplit/internal/domain"
)

func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command tree and maps any error to exit code 1.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", domain.UserMessage(err))
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	f := &splitFlags{}

	cmd := &cobra.Command{
		Use:   "datasplit",
		Short: "Split an images/labels dataset into train, validation and test sets",
		Long: `datasplit copies <datapath>/images/** into data/{train,validation,test}/images
and the matching <datapath>/labels/<stem>.txt files into the sibling labels folders.

Train and validation sizes are floored; the test set takes the remainder.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.dryRun {
				return runPlan(cmd, f, stdout, stderr)
			}
			return runSplit(cmd, f, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	bindSplitFlags(cmd, f)
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "Compute and print the split without creating directories or copying")
	cmd.Flags().BoolVar(&f.manifest, "manifest", false, "Write a JSON manifest of the split under data/manifests")
	cmd.Flags().IntVar(&f.workers, "workers", 1, "Number of concurrent file copies")
	cmd.Flags().BoolVar(&f.tui, "tui", false, "Show an interactive progress view while copying")

	cmd.AddCommand(initCmd(stdout))
	cmd.AddCommand(planCmd(stdout, stderr))
	cmd.AddCommand(versionCmd(stdout))
	return cmd
}
