package fslayout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/datasplit/internal/domain"
)

func TestInitializer_Ensure_CreatesLayout(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Ensure(domain.NewLayout(tmp)); err != nil {
		t.Fatalf("Ensure error: %v", err)
	}

	for _, s := range []string{"train", "validation", "test"} {
		for _, sub := range []string{"images", "labels"} {
			assertDirExists(t, filepath.Join(tmp, "data", s, sub))
		}
	}
}

func TestInitializer_Ensure_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	layout := domain.NewLayout(tmp)

	keep := filepath.Join(tmp, "data", "train", "images", "keep.jpg")
	if err := os.MkdirAll(filepath.Dir(keep), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(keep, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	i := NewInitializer()
	for n := 0; n < 2; n++ {
		if err := i.Ensure(layout); err != nil {
			t.Fatalf("Ensure #%d error: %v", n+1, err)
		}
	}

	if _, err := os.Stat(keep); err != nil {
		t.Fatalf("existing file removed: %v", err)
	}
}

func TestInitializer_Ensure_FailsOnFileInTheWay(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "data"), []byte("not a dir"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := NewInitializer().Ensure(domain.NewLayout(tmp))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected KindExecution, got %v", err)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected dir %s, stat err=%v", path, err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %s to be a directory", path)
	}
}
