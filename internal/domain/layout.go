package domain

import "path/filepath"

const (
	DataDirName   = "data"
	ImagesDirName = "images"
	LabelsDirName = "labels"
)

// Destination is the pair of directories one subset is copied into.
type Destination struct {
	Images string
	Labels string
}

// Layout maps each subset to its destination under an output root.
type Layout struct {
	Root         string
	Destinations map[Subset]Destination
}

// NewLayout derives <root>/data/<subset>/{images,labels} for every subset.
func NewLayout(root string) Layout {
	root = filepath.Clean(root)
	l := Layout{
		Root:         root,
		Destinations: make(map[Subset]Destination, 3),
	}
	for _, s := range Subsets() {
		base := filepath.Join(root, DataDirName, string(s))
		l.Destinations[s] = Destination{
			Images: filepath.Join(base, ImagesDirName),
			Labels: filepath.Join(base, LabelsDirName),
		}
	}
	return l
}

// Dirs returns every destination directory in subset order, images first.
func (l Layout) Dirs() []string {
	out := make([]string, 0, 2*len(l.Destinations))
	for _, s := range Subsets() {
		d, ok := l.Destinations[s]
		if !ok {
			continue
		}
		out = append(out, d.Images, d.Labels)
	}
	return out
}

// DataPaths are the input folders under a dataset root.
type DataPaths struct {
	Root   string
	Images string
	Labels string
}

func NewDataPaths(root string) DataPaths {
	root = filepath.Clean(root)
	return DataPaths{
		Root:   root,
		Images: filepath.Join(root, ImagesDirName),
		Labels: filepath.Join(root, LabelsDirName),
	}
}
