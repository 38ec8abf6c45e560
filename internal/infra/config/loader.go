package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/datasplit/internal/domain"
)

// FileName is the config file looked up by Finder.
const FileName = "datasplit.yaml"

// Load reads a datasplit.yaml and applies it on top of domain.DefaultConfig.
// Relative output paths are resolved against the directory of the file.
func Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&y); err != nil && len(bytes.TrimSpace(b)) > 0 {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if err := apply(&cfg, y.DataSplit, filepath.Dir(path)); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return cfg, nil
}

func apply(cfg *domain.Config, y yamlDataSplit, baseDir string) error {
	if y.TrainPct != nil {
		cfg.Proportions.Train = *y.TrainPct
	}
	if y.ValPct != nil {
		cfg.Proportions.Val = *y.ValPct
	}
	if y.TestPct != nil {
		cfg.Proportions.Test = *y.TestPct
	}

	if y.Output != "" {
		out := y.Output
		if !filepath.IsAbs(out) {
			out = filepath.Join(baseDir, out)
		}
		cfg.Paths.Output = filepath.Clean(out)
	}
	if y.Pattern != "" {
		cfg.Paths.Pattern = y.Pattern
	}

	if y.Seed != nil {
		cfg.Shuffle.Seed = *y.Seed
		cfg.Shuffle.HasSeed = true
	}

	if y.Workers < 0 {
		return fmt.Errorf("field workers: must be >= 0: %w", domain.ErrInvalidConfig)
	}
	if y.Workers > 0 {
		cfg.Copy.Workers = y.Workers
	}
	if y.Manifest != nil {
		cfg.Copy.Manifest = *y.Manifest
	}
	if y.LabelExt != "" {
		cfg.Labels.Ext = y.LabelExt
	}
	return nil
}
