package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/datasplit/internal/domain"
)

// Finder locates datasplit.yaml by searching upward from a directory.
type Finder struct {
	ConfigFile string // defaults to "datasplit.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: FileName}
}

// Find returns the path of the nearest config file at or above startDir.
func (f *Finder) Find(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "config.find",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "config.find",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		cfgPath := filepath.Join(cur, f.ConfigFile)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return cfgPath, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{
				Op:   "config.find",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

// Resolve loads an explicit config file when path is set, otherwise the nearest
// datasplit.yaml above startDir. No file at all yields the defaults.
func Resolve(path, startDir string) (domain.Config, string, error) {
	if path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}

	found, err := NewFinder().Find(startDir)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return domain.DefaultConfig(), "", nil
		}
		return domain.DefaultConfig(), "", err
	}

	cfg, err := Load(found)
	return cfg, found, err
}
