package labels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/datasplit/internal/domain"
)

func TestStemMapper_PairsExistingLabel(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "cat.txt"), []byte("0 0.5 0.5 1 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewStemMapper(dir)
	got := m.Pair(domain.Item{Stem: "cat", ImagePath: "/imgs/cat.jpg"})

	want := filepath.Join(dir, "cat.txt")
	if got.LabelPath != want {
		t.Fatalf("expected label %q, got %q", want, got.LabelPath)
	}
	if got.ImagePath != "/imgs/cat.jpg" {
		t.Fatalf("image path changed: %q", got.ImagePath)
	}
}

func TestStemMapper_MissingLabelIsNotAnError(t *testing.T) {
	m := NewStemMapper(t.TempDir())
	got := m.Pair(domain.Item{Stem: "dog", ImagePath: "/imgs/dog.jpg", LabelPath: "stale"})
	if got.HasLabel() {
		t.Fatalf("expected no label, got %q", got.LabelPath)
	}
}

func TestStemMapper_MissingLabelDir(t *testing.T) {
	m := NewStemMapper(filepath.Join(t.TempDir(), "labels"))
	if m.Pair(domain.Item{Stem: "a"}).HasLabel() {
		t.Fatalf("expected no label when labels/ is absent")
	}
}

func TestStemMapper_IgnoresDirectoryWithLabelName(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "x.txt"), 0o755); err != nil {
		t.Fatal(err)
	}
	if NewStemMapper(dir).Pair(domain.Item{Stem: "x"}).HasLabel() {
		t.Fatalf("directories are not labels")
	}
}

func TestStemMapper_CustomExt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, ext := range []string{".json", "json", " json "} {
		m := NewStemMapper(dir, WithExt(ext))
		if !m.Pair(domain.Item{Stem: "a"}).HasLabel() {
			t.Fatalf("expected json label paired for ext %q", ext)
		}
		if got := m.LabelName(domain.Item{Stem: "a"}); got != "a.json" {
			t.Fatalf("WithExt(%q): unexpected label name %q", ext, got)
		}
	}

	if NewStemMapper(dir, WithExt("")).LabelName(domain.Item{Stem: "a"}) != "a.txt" {
		t.Fatalf("empty ext must keep default")
	}
}
