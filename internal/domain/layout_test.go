package domain

import (
	"path/filepath"
	"testing"
)

func TestNewLayout(t *testing.T) {
	root := filepath.Join("work", "out")
	l := NewLayout(root)

	want := map[Subset]Destination{
		SubsetTrain: {
			Images: filepath.Join(root, "data", "train", "images"),
			Labels: filepath.Join(root, "data", "train", "labels"),
		},
		SubsetValidation: {
			Images: filepath.Join(root, "data", "validation", "images"),
			Labels: filepath.Join(root, "data", "validation", "labels"),
		},
		SubsetTest: {
			Images: filepath.Join(root, "data", "test", "images"),
			Labels: filepath.Join(root, "data", "test", "labels"),
		},
	}

	for s, d := range want {
		if got := l.Destinations[s]; got != d {
			t.Errorf("destination for %s = %+v, want %+v", s, got, d)
		}
	}

	dirs := l.Dirs()
	if len(dirs) != 6 {
		t.Fatalf("expected 6 dirs, got %d", len(dirs))
	}
	if dirs[0] != want[SubsetTrain].Images || dirs[5] != want[SubsetTest].Labels {
		t.Fatalf("unexpected dir order: %v", dirs)
	}
}

func TestNewDataPaths(t *testing.T) {
	dp := NewDataPaths("ds/")
	if dp.Root != "ds" {
		t.Fatalf("expected cleaned root, got %q", dp.Root)
	}
	if dp.Images != filepath.Join("ds", "images") || dp.Labels != filepath.Join("ds", "labels") {
		t.Fatalf("unexpected data paths: %+v", dp)
	}
}

func TestItemHasLabel(t *testing.T) {
	if (Item{ImagePath: "a.jpg"}).HasLabel() {
		t.Fatalf("expected no label")
	}
	if !(Item{ImagePath: "a.jpg", LabelPath: "a.txt"}).HasLabel() {
		t.Fatalf("expected label")
	}
}
