package fscopy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/datasplit/internal/domain"
	"github.com/aalvaropc/datasplit/internal/ports"
)

// ProgressFunc is called after each item is copied. With more than one worker
// it is called from several goroutines.
type ProgressFunc func(subset domain.Subset, item domain.Item)

// Copier copies images and their labels into a subset destination.
type Copier struct {
	labels   ports.LabelMapper
	workers  int
	progress ProgressFunc
	log      *slog.Logger
}

type Option func(*Copier)

// WithWorkers sets the number of concurrent copies. Values below 1 mean 1.
func WithWorkers(n int) Option {
	return func(c *Copier) {
		if n > 0 {
			c.workers = n
		}
	}
}

func WithProgress(fn ProgressFunc) Option {
	return func(c *Copier) { c.progress = fn }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Copier) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns a copier that names copied labels through labels.
func New(labels ports.LabelMapper, opts ...Option) *Copier {
	c := &Copier{
		labels:  labels,
		workers: 1,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ports.Materializer = (*Copier)(nil)

// Copy writes each image into dest.Images under its own filename and each
// paired label into dest.Labels under the mapper's label name. Existing files
// are overwritten. The first failure stops the copy.
func (c *Copier) Copy(ctx context.Context, subset domain.Subset, items []domain.Item, dest domain.Destination) (domain.SubsetReport, error) {
	rep := domain.SubsetReport{Subset: subset}

	var images, labels atomic.Int64
	copyOne := func(it domain.Item) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		dst := filepath.Join(dest.Images, filepath.Base(it.ImagePath))
		if err := copyFile(it.ImagePath, dst); err != nil {
			return err
		}
		images.Add(1)

		if it.HasLabel() {
			ldst := filepath.Join(dest.Labels, c.labels.LabelName(it))
			if err := copyFile(it.LabelPath, ldst); err != nil {
				return err
			}
			labels.Add(1)
		}

		c.log.Debug("copy.item", "subset", subset, "image", it.ImagePath, "label", it.LabelPath)
		if c.progress != nil {
			c.progress(subset, it)
		}
		return nil
	}

	var err error
	if c.workers <= 1 || len(items) < 2 {
		for _, it := range items {
			if err = copyOne(it); err != nil {
				break
			}
		}
	} else {
		err = c.copyParallel(ctx, items, copyOne)
	}

	rep.Images = int(images.Load())
	rep.Labels = int(labels.Load())
	return rep, err
}

// copyParallel runs copyOne over items with a bounded pool. Items sharing a
// stem can land on the same destination file, so they are copied by one
// worker in input order and the result matches a sequential run.
func (c *Copier) copyParallel(ctx context.Context, items []domain.Item, copyOne func(domain.Item) error) error {
	var order []string
	buckets := make(map[string][]domain.Item)
	for _, it := range items {
		if _, ok := buckets[it.Stem]; !ok {
			order = append(order, it.Stem)
		}
		buckets[it.Stem] = append(buckets[it.Stem], it)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for _, stem := range order {
		bucket := buckets[stem]
		g.Go(func() error {
			for _, it := range bucket {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := copyOne(it); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return copyErr("fscopy.open", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return copyErr("fscopy.stat", src, err)
	}

	// Opening dst with O_TRUNC would empty src when both name the same file.
	if dinfo, statErr := os.Stat(dst); statErr == nil && os.SameFile(info, dinfo) {
		return copyErr("fscopy.samefile", dst, fmt.Errorf("%s and %s are the same file", src, dst))
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return copyErr("fscopy.create", dst, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = copyErr("fscopy.close", dst, cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return copyErr("fscopy.write", dst, err)
	}
	return nil
}

func copyErr(op, path string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}
