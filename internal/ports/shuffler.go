package ports

import "github.com/aalvaropc/datasplit/internal/domain"

// Shuffler returns a random permutation of items. Implementations must not
// mutate the input slice.
type Shuffler interface {
	Shuffle(items []domain.Item) []domain.Item
}
