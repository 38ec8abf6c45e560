package fsworkspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/datasplit/internal/domain"
	"github.com/aalvaropc/datasplit/internal/infra/config"
)

func TestInitializer_Init_WritesLoadableConfig(t *testing.T) {
	tmp := t.TempDir()

	cfg := domain.DefaultConfig()
	cfg.Proportions = domain.Proportions{Train: 0.8, Val: 0.15, Test: 0.05}
	cfg.Copy.Workers = 4

	wrote, err := NewInitializer().Init(tmp, cfg, false)
	if err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if !wrote {
		t.Fatalf("expected config to be written")
	}

	assertFileExists(t, filepath.Join(tmp, ".gitignore"))

	loaded, err := config.Load(filepath.Join(tmp, config.FileName))
	if err != nil {
		t.Fatalf("generated config does not load: %v", err)
	}
	if loaded.Proportions != cfg.Proportions {
		t.Fatalf("proportions mismatch: got %+v want %+v", loaded.Proportions, cfg.Proportions)
	}
	if loaded.Copy.Workers != 4 || loaded.Copy.Manifest {
		t.Fatalf("unexpected copy config %+v", loaded.Copy)
	}
	if loaded.Paths.Pattern != domain.DefaultPattern || loaded.Labels.Ext != domain.DefaultLabelExt {
		t.Fatalf("unexpected paths/labels %+v %+v", loaded.Paths, loaded.Labels)
	}
	if loaded.Shuffle.HasSeed {
		t.Fatalf("generated config must not pin a seed")
	}
}

func TestInitializer_Init_SkipsExistingFileUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, config.FileName)
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing config: %v", err)
	}

	i := NewInitializer()

	wrote, err := i.Init(tmp, domain.DefaultConfig(), false)
	if err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}
	if wrote {
		t.Fatalf("expected existing config to be kept")
	}

	b, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected config preserved, got %q", string(b))
	}

	wrote, err = i.Init(tmp, domain.DefaultConfig(), true)
	if err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}
	if !wrote {
		t.Fatalf("expected config to be overwritten")
	}
	if _, err := config.Load(cfgPath); err != nil {
		t.Fatalf("overwritten config does not load: %v", err)
	}
}

func TestInitializer_Init_RejectsBadProportions(t *testing.T) {
	tmp := t.TempDir()

	cfg := domain.DefaultConfig()
	cfg.Proportions.Train = 0.9

	_, err := NewInitializer().Init(tmp, cfg, false)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, domain.ErrInvalidConfig) {
		t.Fatalf("expected invalid config, got %v", err)
	}

	entries, _ := os.ReadDir(tmp)
	if len(entries) != 0 {
		t.Fatalf("expected nothing written, got %d entries", len(entries))
	}
}

func TestInitializer_Init_RejectsNegativeWorkers(t *testing.T) {
	tmp := t.TempDir()

	cfg := domain.DefaultConfig()
	cfg.Copy.Workers = -3

	_, err := NewInitializer().Init(tmp, cfg, false)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}

	entries, _ := os.ReadDir(tmp)
	if len(entries) != 0 {
		t.Fatalf("expected nothing written, got %d entries", len(entries))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}
