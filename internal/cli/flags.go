package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/datasplit/internal/domain"
	"github.com/aalvaropc/datasplit/internal/infra/config"
)

type splitFlags struct {
	dataPath string
	train    float64
	val      float64
	test     float64

	output   string
	seed     int64
	pattern  string
	labelExt string
	config   string

	workers  int
	manifest bool
	dryRun   bool
	tui      bool

	format  string
	debug   bool
	logFile string
}

// bindSplitFlags registers the flags shared by the root command and plan.
func bindSplitFlags(c *cobra.Command, f *splitFlags) {
	def := domain.DefaultConfig()

	c.Flags().StringVar(&f.dataPath, "datapath", "", "Path to data folder containing images/ and labels/ (required)")
	c.Flags().Float64Var(&f.train, "train_pct", def.Proportions.Train, "Train percentage (e.g., 0.7)")
	c.Flags().Float64Var(&f.val, "val_pct", def.Proportions.Val, "Validation percentage (e.g., 0.2)")
	c.Flags().Float64Var(&f.test, "test_pct", def.Proportions.Test, "Test percentage (e.g., 0.1)")

	c.Flags().StringVarP(&f.output, "output", "o", "", "Root the data/ tree is written under (default: current directory)")
	c.Flags().Int64Var(&f.seed, "seed", 0, "Shuffle seed; omit for a different random split on every run")
	c.Flags().StringVar(&f.pattern, "pattern", def.Paths.Pattern, "Glob (doublestar) selecting images relative to images/")
	c.Flags().StringVar(&f.labelExt, "label-ext", def.Labels.Ext, "Annotation file extension")
	c.Flags().StringVar(&f.config, "config", "", "Path to datasplit.yaml (default: nearest datasplit.yaml upward from the working directory)")

	c.Flags().StringVar(&f.format, "format", "pretty", "Output format: pretty|json")
	c.Flags().BoolVar(&f.debug, "debug", false, "Enable verbose logging")
	c.Flags().StringVar(&f.logFile, "log-file", "", "Append JSON logs to this file")

	_ = c.MarkFlagRequired("datapath")
}

// resolveConfig layers defaults < datasplit.yaml < flags that were set explicitly.
func resolveConfig(c *cobra.Command, f *splitFlags) (domain.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	cfg, _, err := config.Resolve(f.config, wd)
	if err != nil {
		return cfg, err
	}

	changed := func(name string) bool {
		fl := c.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}

	if changed("train_pct") {
		cfg.Proportions.Train = f.train
	}
	if changed("val_pct") {
		cfg.Proportions.Val = f.val
	}
	if changed("test_pct") {
		cfg.Proportions.Test = f.test
	}
	if changed("output") {
		cfg.Paths.Output = f.output
	}
	if changed("pattern") {
		cfg.Paths.Pattern = f.pattern
	}
	if changed("label-ext") {
		cfg.Labels.Ext = f.labelExt
	}
	if changed("seed") {
		cfg.Shuffle.Seed = f.seed
		cfg.Shuffle.HasSeed = true
	}
	if changed("workers") {
		cfg.Copy.Workers = f.workers
	}
	if changed("manifest") {
		cfg.Copy.Manifest = f.manifest
	}

	if strings.TrimSpace(cfg.Paths.Output) == "" {
		cfg.Paths.Output = wd
	}
	if abs, err := filepath.Abs(cfg.Paths.Output); err == nil {
		cfg.Paths.Output = abs
	}
	return cfg, nil
}
