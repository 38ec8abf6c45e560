package labels

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/datasplit/internal/domain"
	"github.com/aalvaropc/datasplit/internal/ports"
)

// StemMapper pairs an image with <labelDir>/<stem><ext>.
type StemMapper struct {
	dir string
	ext string
}

type Option func(*StemMapper)

// WithExt switches the annotation extension (".txt" by default), e.g. ".json"
// or ".xml". A missing leading dot is added.
func WithExt(ext string) Option {
	return func(m *StemMapper) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		m.ext = ext
	}
}

func NewStemMapper(labelDir string, opts ...Option) *StemMapper {
	m := &StemMapper{
		dir: filepath.Clean(labelDir),
		ext: domain.DefaultLabelExt,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var _ ports.LabelMapper = (*StemMapper)(nil)

func (m *StemMapper) LabelName(item domain.Item) string {
	return item.Stem + m.ext
}

// Pair sets LabelPath when the annotation exists as a regular file and clears it
// otherwise. Absence is the normal case for background images.
func (m *StemMapper) Pair(item domain.Item) domain.Item {
	p := filepath.Join(m.dir, m.LabelName(item))
	info, err := os.Stat(p)
	if err != nil || !info.Mode().IsRegular() {
		item.LabelPath = ""
		return item
	}
	item.LabelPath = p
	return item
}
