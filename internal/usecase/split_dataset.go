package usecase

import (
	"context"
	"fmt"

	"github.com/aalvaropc/datasplit/internal/domain"
	"github.com/aalvaropc/datasplit/internal/ports"
)

// SplitDataset runs the whole pipeline: plan, create the layout, copy every
// subset and optionally persist a manifest.
type SplitDataset struct {
	plan   *PlanSplit
	layout ports.LayoutInitializer
	copier ports.Materializer
	store  ports.ReportStore

	onPartition func(domain.Counts)
}

type SplitOption func(*SplitDataset)

// WithReportStore enables manifest persistence.
func WithReportStore(s ports.ReportStore) SplitOption {
	return func(uc *SplitDataset) { uc.store = s }
}

// WithOnPartition is called once the counts are known and before any
// directory is created.
func WithOnPartition(fn func(domain.Counts)) SplitOption {
	return func(uc *SplitDataset) { uc.onPartition = fn }
}

func NewSplitDataset(plan *PlanSplit, li ports.LayoutInitializer, m ports.Materializer, opts ...SplitOption) *SplitDataset {
	uc := &SplitDataset{
		plan:   plan,
		layout: li,
		copier: m,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute is fail-fast: the first error stops the run and nothing is rolled back.
// A bad proportion triple or a missing dataset root is reported before any
// directory is created.
func (uc *SplitDataset) Execute(ctx context.Context, req SplitRequest) (domain.SplitReport, error) {
	res, rep, err := uc.plan.Execute(ctx, req)
	if err != nil {
		return rep, err
	}
	if uc.onPartition != nil {
		uc.onPartition(rep.Counts)
	}

	layout := domain.NewLayout(req.OutputRoot)
	rep.OutputRoot = layout.Root
	if err := uc.layout.Ensure(layout); err != nil {
		return rep, err
	}

	log := uc.plan.log
	for _, g := range res.Groups() {
		dest := layout.Destinations[g.Subset]
		sr, err := uc.copier.Copy(ctx, g.Subset, g.Items, dest)
		rep.Subsets = append(rep.Subsets, sr)
		if err != nil {
			return rep, fmt.Errorf("copy %s: %w", g.Subset, err)
		}
		log.Info("split.copied", "subset", g.Subset, "images", sr.Images, "labels", sr.Labels)
	}

	rep.EndedAt = uc.plan.now()

	if uc.store != nil {
		id, err := uc.store.SaveManifest(domain.NewManifest(rep, res))
		if err != nil {
			return rep, err
		}
		rep.ManifestID = id
	}

	log.Info("split.done", "run_id", rep.RunID, "total", rep.Counts.Total)
	return rep, nil
}
