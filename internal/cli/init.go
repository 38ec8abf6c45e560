package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/datasplit/internal/domain"
	"github.com/aalvaropc/datasplit/internal/infra/config"
	"github.com/aalvaropc/datasplit/internal/infra/fsworkspace"
	"github.com/aalvaropc/datasplit/internal/usecase"
)

func initCmd(stdout io.Writer) *cobra.Command {
	var (
		force   bool
		train   float64
		val     float64
		test    float64
		workers int
	)
	def := domain.DefaultConfig()

	c := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a starter datasplit.yaml and ignore the generated data/ tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			abs, err := filepath.Abs(root)
			if err != nil {
				return fmt.Errorf("invalid directory: %w", err)
			}

			props, err := domain.NewProportions(train, val, test)
			if err != nil {
				return err
			}
			cfg := domain.DefaultConfig()
			cfg.Proportions = props
			cfg.Copy.Workers = workers

			uc := usecase.NewInitProject(fsworkspace.NewInitializer())
			wrote, err := uc.Execute(abs, cfg, force)
			if err != nil {
				return err
			}

			path := filepath.Join(abs, config.FileName)
			if !wrote {
				fmt.Fprintf(stdout, "%s already exists (use --force to overwrite)\n", path)
				return nil
			}
			fmt.Fprintf(stdout, "Wrote %s\n", path)
			return nil
		},
	}

	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing datasplit.yaml")
	c.Flags().Float64Var(&train, "train_pct", def.Proportions.Train, "Train percentage written to the file")
	c.Flags().Float64Var(&val, "val_pct", def.Proportions.Val, "Validation percentage written to the file")
	c.Flags().Float64Var(&test, "test_pct", def.Proportions.Test, "Test percentage written to the file")
	c.Flags().IntVar(&workers, "workers", def.Copy.Workers, "Copy workers written to the file")
	return c
}
