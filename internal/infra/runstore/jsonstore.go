package runstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/datasplit/internal/domain"
	"github.com/aalvaropc/datasplit/internal/ports"
)

const defaultManifestsDir = "manifests"

// JSONStore writes split manifests under <root>/data/manifests.
type JSONStore struct {
	rootDir      string
	manifestsDir string
	writeIndex   bool
	now          func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: manifests/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, opts ...Option) *JSONStore {
	s := &JSONStore{
		rootDir:      root,
		manifestsDir: defaultManifestsDir,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportStore = (*JSONStore)(nil)

// Dir is the directory manifests are written to.
func (s *JSONStore) Dir() string {
	return filepath.Join(s.rootDir, domain.DataDirName, s.manifestsDir)
}

func (s *JSONStore) SaveManifest(m domain.Manifest) (string, error) {
	dir := s.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := m.Report.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	slug := shortID(m.Report.RunID)
	if slug == "" {
		slug = "split"
	}

	base := fmt.Sprintf("%s_%s", ts.Format("20060102T150405Z"), slug)
	id, path, err := uniqueName(dir, base)
	if err != nil {
		return "", &domain.OpError{
			Op:   "runstore.name",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	toSave := m
	toSave.Report.ManifestID = id

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "runstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "runstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filepath.Base(path), m.Report)
	}

	return id, nil
}

func (s *JSONStore) appendIndex(dir, id, filename string, rep domain.SplitReport) error {
	type idx struct {
		ID        string        `json:"id"`
		File      string        `json:"file"`
		RunID     string        `json:"run_id"`
		DataPath  string        `json:"data_path"`
		Counts    domain.Counts `json:"counts"`
		StartedAt time.Time     `json:"started_at"`
	}
	line, err := json.Marshal(idx{
		ID:        id,
		File:      filename,
		RunID:     rep.RunID,
		DataPath:  rep.DataPath,
		Counts:    rep.Counts,
		StartedAt: rep.StartedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// uniqueName picks base.json, or base_2.json, base_3.json... if taken.
func uniqueName(dir, base string) (id string, path string, err error) {
	for n := 1; n < 1000; n++ {
		id = base
		if n > 1 {
			id = fmt.Sprintf("%s_%d", base, n)
		}
		path = filepath.Join(dir, id+".json")
		_, statErr := os.Stat(path)
		if errors.Is(statErr, fs.ErrNotExist) {
			return id, path, nil
		}
		if statErr != nil {
			return "", "", statErr
		}
	}
	return "", "", fmt.Errorf("too many manifests named %s", base)
}

// shortID keeps the first 8 hex characters of a UUID.
func shortID(runID string) string {
	id := strings.ReplaceAll(strings.TrimSpace(runID), "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToLower(id)
}
