package fslayout

import (
	"os"

	"github.com/aalvaropc/datasplit/internal/domain"
	"github.com/aalvaropc/datasplit/internal/ports"
)

// Initializer creates the destination tree of a split.
type Initializer struct {
	perm os.FileMode
}

func NewInitializer() *Initializer {
	return &Initializer{perm: 0o755}
}

var _ ports.LayoutInitializer = (*Initializer)(nil)

// Ensure creates every destination directory. Existing directories are left as is.
func (i *Initializer) Ensure(layout domain.Layout) error {
	for _, d := range layout.Dirs() {
		if err := os.MkdirAll(d, i.perm); err != nil {
			return &domain.OpError{
				Op:   "fslayout.mkdir",
				Kind: domain.KindExecution,
				Path: d,
				Err:  err,
			}
		}
	}
	return nil
}
