package tui

import (
	"context"
	"log/slog"

	"github.com/aalvaropc/datasplit/internal/domain"
)

// Hooks are handed to a Job so it can report progress to the view.
type Hooks struct {
	OnPartition func(domain.Counts)
	OnItem      func(domain.Subset, domain.Item)
}

// Job runs the split. It must honour ctx: the view cancels it on ctrl+c.
type Job func(ctx context.Context, hooks Hooks) (domain.SplitReport, error)

type Deps struct {
	Title  string
	Logger *slog.Logger
}
