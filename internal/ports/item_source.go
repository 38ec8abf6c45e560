package ports

import (
	"context"

	"github.com/aalvaropc/datasplit/internal/domain"
)

// ItemSource discovers the images of a dataset (e.g., from the filesystem).
type ItemSource interface {
	Discover(ctx context.Context, data domain.DataPaths) ([]domain.Item, error)
}
