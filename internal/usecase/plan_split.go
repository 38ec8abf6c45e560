package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/datasplit/internal/domain"
	"github.com/aalvaropc/datasplit/internal/ports"
)

// SplitRequest is the input of a split or a plan.
type SplitRequest struct {
	DataPath    string
	OutputRoot  string
	Proportions domain.Proportions
	// Seed is informational: the shuffler is built by the caller.
	Seed *int64
}

// PlanSplit computes which subset every image goes to without writing anything.
type PlanSplit struct {
	source   ports.ItemSource
	shuffler ports.Shuffler
	labels   ports.LabelMapper

	log   *slog.Logger
	now   func() time.Time
	newID func() string
}

type PlanOption func(*PlanSplit)

func WithPlanLogger(l *slog.Logger) PlanOption {
	return func(uc *PlanSplit) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) PlanOption {
	return func(uc *PlanSplit) {
		if now != nil {
			uc.now = now
		}
	}
}

// WithRunID replaces the UUID generator, useful for tests.
func WithRunID(fn func() string) PlanOption {
	return func(uc *PlanSplit) {
		if fn != nil {
			uc.newID = fn
		}
	}
}

func NewPlanSplit(src ports.ItemSource, sh ports.Shuffler, lm ports.LabelMapper, opts ...PlanOption) *PlanSplit {
	uc := &PlanSplit{
		source:   src,
		shuffler: sh,
		labels:   lm,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute validates the proportions, discovers, shuffles, partitions and pairs
// labels. Proportions are checked before the dataset is touched.
func (uc *PlanSplit) Execute(ctx context.Context, req SplitRequest) (domain.SplitResult, domain.SplitReport, error) {
	rep := domain.SplitReport{
		RunID:       uc.newID(),
		DataPath:    req.DataPath,
		OutputRoot:  req.OutputRoot,
		Proportions: req.Proportions,
		Seed:        req.Seed,
		StartedAt:   uc.now(),
	}

	if err := req.Proportions.Validate(); err != nil {
		return domain.SplitResult{}, rep, err
	}

	data := domain.NewDataPaths(req.DataPath)
	items, err := uc.source.Discover(ctx, data)
	if err != nil {
		return domain.SplitResult{}, rep, err
	}
	uc.log.Info("split.discovered", "data_path", data.Root, "images", len(items))

	shuffled := uc.shuffler.Shuffle(items)
	res := domain.Partition(shuffled, req.Proportions)

	for _, g := range res.Groups() {
		for i := range g.Items {
			g.Items[i] = uc.labels.Pair(g.Items[i])
		}
	}

	rep.Counts = res.Counts()
	uc.log.Info("split.partitioned",
		"total", rep.Counts.Total,
		"train", rep.Counts.Train,
		"val", rep.Counts.Val,
		"test", rep.Counts.Test,
	)

	return res, rep, nil
}

// plannedSubsets fills per-subset image/label counts from a result without copying.
func plannedSubsets(res domain.SplitResult) []domain.SubsetReport {
	out := make([]domain.SubsetReport, 0, 3)
	for _, g := range res.Groups() {
		sr := domain.SubsetReport{Subset: g.Subset, Images: len(g.Items)}
		for _, it := range g.Items {
			if it.HasLabel() {
				sr.Labels++
			}
		}
		out = append(out, sr)
	}
	return out
}

// Plan is Execute followed by a dry-run report.
func (uc *PlanSplit) Plan(ctx context.Context, req SplitRequest) (domain.SplitResult, domain.SplitReport, error) {
	res, rep, err := uc.Execute(ctx, req)
	if err != nil {
		return res, rep, err
	}
	rep.DryRun = true
	rep.Subsets = plannedSubsets(res)
	rep.EndedAt = uc.now()
	return res, rep, nil
}
