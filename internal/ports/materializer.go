package ports

import (
	"context"

	"github.com/aalvaropc/datasplit/internal/domain"
)

// Materializer copies one subset's items into its destination.
type Materializer interface {
	Copy(ctx context.Context, subset domain.Subset, items []domain.Item, dest domain.Destination) (domain.SubsetReport, error)
}
