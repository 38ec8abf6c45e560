package ports

import "github.com/aalvaropc/datasplit/internal/domain"

type LayoutInitializer interface {
	Ensure(layout domain.Layout) error
}
