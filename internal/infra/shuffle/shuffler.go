package shuffle

import (
	"math/rand/v2"
	"sync"

	"github.com/aalvaropc/datasplit/internal/domain"
	"github.com/aalvaropc/datasplit/internal/ports"
)

// Shuffler is a Fisher-Yates shuffler. Without a seed every process gets a
// different order; with a seed the order is fixed for a given input.
type Shuffler struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns an unseeded shuffler backed by the runtime's random source.
func New() *Shuffler {
	return &Shuffler{rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded returns a deterministic shuffler.
func NewSeeded(seed int64) *Shuffler {
	s := uint64(seed)
	return &Shuffler{rnd: rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))}
}

var _ ports.Shuffler = (*Shuffler)(nil)

// Shuffle returns a permuted copy of items.
func (s *Shuffler) Shuffle(items []domain.Item) []domain.Item {
	out := make([]domain.Item, len(items))
	copy(out, items)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Identity keeps the input order. Useful for tests that exercise the
// partition step on a known sequence.
type Identity struct{}

func (Identity) Shuffle(items []domain.Item) []domain.Item {
	out := make([]domain.Item, len(items))
	copy(out, items)
	return out
}
