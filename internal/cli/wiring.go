package cli

import (
	"io"
	"path/filepath"

	"github.com/aalvaropc/datasplit/internal/domain"
	"github.com/aalvaropc/datasplit/internal/infra/fscopy"
	"github.com/aalvaropc/datasplit/internal/infra/fsdiscover"
	"github.com/aalvaropc/datasplit/internal/infra/fslayout"
	"github.com/aalvaropc/datasplit/internal/infra/labels"
	"github.com/aalvaropc/datasplit/internal/infra/logger"
	"github.com/aalvaropc/datasplit/internal/infra/runstore"
	"github.com/aalvaropc/datasplit/internal/infra/shuffle"
	"github.com/aalvaropc/datasplit/internal/ports"
	"github.com/aalvaropc/datasplit/internal/usecase"
)

// splitCtx carries a resolved configuration and the request built from it.
type splitCtx struct {
	cfg domain.Config
	req usecase.SplitRequest

	mapper *labels.StemMapper
	source *fsdiscover.Source
}

func newSplitCtx(cfg domain.Config, dataPath string) (*splitCtx, error) {
	abs, err := filepath.Abs(dataPath)
	if err != nil {
		abs = filepath.Clean(dataPath)
	}

	src, err := fsdiscover.NewSource(fsdiscover.WithPattern(cfg.Paths.Pattern))
	if err != nil {
		return nil, err
	}

	req := usecase.SplitRequest{
		DataPath:    abs,
		OutputRoot:  cfg.Paths.Output,
		Proportions: cfg.Proportions,
	}
	if cfg.Shuffle.HasSeed {
		seed := cfg.Shuffle.Seed
		req.Seed = &seed
	}

	return &splitCtx{
		cfg:    cfg,
		req:    req,
		mapper: labels.NewStemMapper(domain.NewDataPaths(abs).Labels, labels.WithExt(cfg.Labels.Ext)),
		source: src,
	}, nil
}

func (s *splitCtx) shuffler() ports.Shuffler {
	if s.cfg.Shuffle.HasSeed {
		return shuffle.NewSeeded(s.cfg.Shuffle.Seed)
	}
	return shuffle.New()
}

func (s *splitCtx) planner() *usecase.PlanSplit {
	return usecase.NewPlanSplit(s.source, s.shuffler(), s.mapper, usecase.WithPlanLogger(logger.L()))
}

// splitter wires the full pipeline. progress may be nil.
func (s *splitCtx) splitter(progress fscopy.ProgressFunc, onPartition func(domain.Counts)) *usecase.SplitDataset {
	copier := fscopy.New(s.mapper,
		fscopy.WithWorkers(s.cfg.Copy.Workers),
		fscopy.WithProgress(progress),
		fscopy.WithLogger(logger.L()),
	)

	opts := []usecase.SplitOption{usecase.WithOnPartition(onPartition)}
	if s.cfg.Copy.Manifest {
		opts = append(opts, usecase.WithReportStore(runstore.NewJSONStore(s.cfg.Paths.Output, runstore.WithIndex(true))))
	}

	return usecase.NewSplitDataset(s.planner(), fslayout.NewInitializer(), copier, opts...)
}

// setupLogging is deferred until the configuration has been checked so a
// rejected run never creates a log file.
func setupLogging(f *splitFlags, stderr io.Writer) func() {
	cleanup, err := logger.Setup(logger.Config{
		Path:   f.logFile,
		Debug:  f.debug,
		Stderr: stderr,
	})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}
