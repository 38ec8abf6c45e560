package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/datasplit/internal/domain"
	"github.com/aalvaropc/datasplit/internal/infra/fsdiscover"
	"github.com/aalvaropc/datasplit/internal/infra/logger"
	"github.com/aalvaropc/datasplit/internal/ui/tui"
)

// prepare resolves the configuration and rejects bad proportions and a missing
// datapath, in that order, before anything is written.
func prepare(cmd *cobra.Command, f *splitFlags) (*splitCtx, error) {
	if err := checkFormat(f.format); err != nil {
		return nil, err
	}

	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return nil, err
	}
	if err := cfg.Proportions.Validate(); err != nil {
		return nil, err
	}
	if err := fsdiscover.CheckRoot(f.dataPath); err != nil {
		return nil, err
	}
	return newSplitCtx(cfg, f.dataPath)
}

func runSplit(cmd *cobra.Command, f *splitFlags, stdout, stderr io.Writer) error {
	sc, err := prepare(cmd, f)
	if err != nil {
		return err
	}

	done := setupLogging(f, stderr)
	defer done()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if f.tui {
		rep, err := tui.Run(ctx, tui.Deps{Title: "datasplit " + sc.req.DataPath, Logger: logger.L()}, func(ctx context.Context, h tui.Hooks) (domain.SplitReport, error) {
			return sc.splitter(h.OnItem, h.OnPartition).Execute(ctx, sc.req)
		})
		if err != nil {
			return err
		}
		return printFinal(stdout, rep, f.format)
	}

	var onPartition func(domain.Counts)
	if f.format != "json" {
		// Counts are known before copying starts; show them right away.
		onPartition = func(c domain.Counts) { printCounts(stdout, c) }
	}

	rep, err := sc.splitter(nil, onPartition).Execute(ctx, sc.req)
	if err != nil {
		return err
	}

	if f.format == "json" {
		return printJSON(stdout, rep)
	}
	if rep.ManifestID != "" {
		fmt.Fprintf(stdout, "Manifest: %s\n", rep.ManifestID)
	}
	fmt.Fprintln(stdout, doneMessage)
	return nil
}

func runPlan(cmd *cobra.Command, f *splitFlags, stdout, stderr io.Writer) error {
	sc, err := prepare(cmd, f)
	if err != nil {
		return err
	}

	done := setupLogging(f, stderr)
	defer done()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res, rep, err := sc.planner().Plan(ctx, sc.req)
	if err != nil {
		return err
	}
	return printPlan(stdout, res, rep, f.format)
}
