package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/datasplit/internal/domain"
)

func TestFind_FromNestedDir(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "proj")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfgPath := filepath.Join(root, FileName)
	if err := os.WriteFile(cfgPath, []byte("datasplit:\n  seed: 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	got, err := NewFinder().Find(nested)
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if got != cfgPath {
		t.Fatalf("expected %s, got %s", cfgPath, got)
	}
}

func TestFind_NotFound(t *testing.T) {
	tmp := t.TempDir()
	_, err := NewFinder().Find(tmp)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestFind_EmptyStart(t *testing.T) {
	if _, err := NewFinder().Find(""); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestResolve_ExplicitPath(t *testing.T) {
	cfg, used, err := Resolve(filepath.Join("testdata", "partial.yaml"), "")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if used != filepath.Join("testdata", "partial.yaml") || cfg.Proportions.Train != 0.6 {
		t.Fatalf("unexpected resolve result %q %+v", used, cfg.Proportions)
	}
}

func TestResolve_FindsNearest(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, FileName), []byte("datasplit:\n  workers: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, used, err := Resolve("", tmp)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if used != filepath.Join(tmp, FileName) || cfg.Copy.Workers != 3 {
		t.Fatalf("unexpected resolve result %q %+v", used, cfg.Copy)
	}
}
