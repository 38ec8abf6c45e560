package fsdiscover

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/aalvaropc/datasplit/internal/domain"
	"github.com/aalvaropc/datasplit/internal/ports"
)

// Source enumerates every regular file under <datapath>/images, recursively.
type Source struct {
	pattern string
}

type Option func(*Source)

// WithPattern restricts discovery to files whose path relative to images/
// matches a doublestar pattern, e.g. "**/*.{jpg,png}".
func WithPattern(pattern string) Option {
	return func(s *Source) {
		if strings.TrimSpace(pattern) != "" {
			s.pattern = pattern
		}
	}
}

func NewSource(opts ...Option) (*Source, error) {
	s := &Source{pattern: domain.DefaultPattern}
	for _, opt := range opts {
		opt(s)
	}

	if !doublestar.ValidatePattern(s.pattern) {
		return nil, &domain.OpError{
			Op:   "fsdiscover.pattern",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("invalid pattern %q: %w", s.pattern, domain.ErrInvalidConfig),
		}
	}
	return s, nil
}

var _ ports.ItemSource = (*Source)(nil)

// Discover returns the images sorted by path so that a seeded shuffle is
// reproducible. The dataset root must be a directory; a root without an
// images/ folder yields no items.
func (s *Source) Discover(ctx context.Context, data domain.DataPaths) ([]domain.Item, error) {
	if err := CheckRoot(data.Root); err != nil {
		return nil, err
	}

	info, err := os.Stat(data.Images)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.Item{}, nil
		}
		return nil, &domain.OpError{
			Op:   "fsdiscover.stat",
			Kind: domain.KindExecution,
			Path: data.Images,
			Err:  err,
		}
	}
	if !info.IsDir() {
		return []domain.Item{}, nil
	}

	var items []domain.Item
	walkErr := filepath.WalkDir(data.Images, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if d.IsDir() {
			return nil
		}

		if !isRegular(p, d) {
			return nil
		}

		rel, err := filepath.Rel(data.Images, p)
		if err != nil {
			return err
		}
		ok, err := doublestar.Match(s.pattern, filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		items = append(items, domain.Item{
			Stem:      Stem(d.Name()),
			ImagePath: p,
		})
		return nil
	})
	if walkErr != nil {
		if errors.Is(walkErr, context.Canceled) || errors.Is(walkErr, context.DeadlineExceeded) {
			return nil, walkErr
		}
		return nil, &domain.OpError{
			Op:   "fsdiscover.walk",
			Kind: domain.KindExecution,
			Path: data.Images,
			Err:  walkErr,
		}
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ImagePath < items[j].ImagePath })
	if items == nil {
		items = []domain.Item{}
	}
	return items, nil
}

// CheckRoot fails with a not_found OpError unless root is an existing directory.
func CheckRoot(root string) error {
	info, err := os.Stat(root)
	if err == nil && info.IsDir() {
		return nil
	}
	if err == nil {
		err = fmt.Errorf("not a directory: %w", domain.ErrNotFound)
	} else if errors.Is(err, fs.ErrNotExist) {
		err = domain.ErrNotFound
	}
	return &domain.OpError{
		Op:   domain.OpDataPath,
		Kind: domain.KindNotFound,
		Path: root,
		Err:  err,
	}
}

// Stem strips the last extension. Dotfiles keep their full name.
func Stem(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if stem == "" {
		return name
	}
	return stem
}

func isRegular(p string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	// Follow symlinks, skip dangling ones and links to directories.
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}
