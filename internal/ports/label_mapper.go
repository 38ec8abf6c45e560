package ports

import "github.com/aalvaropc/datasplit/internal/domain"

// LabelMapper locates the annotation paired with an image.
type LabelMapper interface {
	// Pair returns item with LabelPath set when an annotation exists.
	// A missing annotation is not an error.
	Pair(item domain.Item) domain.Item
	// LabelName is the filename the annotation is copied under.
	LabelName(item domain.Item) string
}
