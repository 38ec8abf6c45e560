package fsworkspace

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aalvaropc/datasplit/internal/app/template"
	"github.com/aalvaropc/datasplit/internal/domain"
	"github.com/aalvaropc/datasplit/internal/infra/config"
)

const opInit = "workspace.init"

// Initializer prepares a directory for datasplit: a starter datasplit.yaml and
// a .gitignore entry for the generated data/ tree.
type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

// Init writes <root>/datasplit.yaml rendered from cfg. An existing file is kept
// unless force is set. It reports whether the config file was written.
func (i *Initializer) Init(root string, cfg domain.Config, force bool) (bool, error) {
	root = filepath.Clean(root)

	if err := cfg.Proportions.Validate(); err != nil {
		return false, err
	}
	if cfg.Copy.Workers < 0 {
		return false, &domain.OpError{
			Op:   opInit,
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("workers must be >= 0, got %d: %w", cfg.Copy.Workers, domain.ErrInvalidConfig),
		}
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return false, initErr(root, err)
	}

	if err := ensureGitignore(root); err != nil {
		return false, initErr(filepath.Join(root, ".gitignore"), err)
	}

	dst := filepath.Join(root, config.FileName)
	if !force {
		if _, statErr := os.Stat(dst); statErr == nil {
			return false, nil
		}
	}

	body, err := renderConfig(cfg)
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(dst, []byte(body), 0o644); err != nil {
		return false, initErr(dst, err)
	}
	return true, nil
}

func renderConfig(cfg domain.Config) (string, error) {
	b, err := fs.ReadFile(templatesFS, configTemplate)
	if err != nil {
		return "", initErr(configTemplate, err)
	}

	return template.RenderString(string(b), map[string]string{
		"train_pct": formatPct(cfg.Proportions.Train),
		"val_pct":   formatPct(cfg.Proportions.Val),
		"test_pct":  formatPct(cfg.Proportions.Test),
		"pattern":   cfg.Paths.Pattern,
		"label_ext": cfg.Labels.Ext,
		"workers":   strconv.Itoa(max(cfg.Copy.Workers, 1)),
		"manifest":  strconv.FormatBool(cfg.Copy.Manifest),
	})
}

func formatPct(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func initErr(path string, err error) error {
	return &domain.OpError{Op: opInit, Kind: domain.KindExecution, Path: path, Err: err}
}

// ensureGitignore appends the generated split tree to .gitignore, creating the
// file if needed. Entries already present are not repeated.
func ensureGitignore(root string) error {
	const header = "# datasplit"
	entries := []string{
		domain.DataDirName + "/",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 32)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(out.String()), 0o644); err != nil {
		return fmt.Errorf("update .gitignore: %w", err)
	}
	return nil
}
