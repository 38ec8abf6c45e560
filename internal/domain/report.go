package domain

import "time"

// SubsetReport describes what was copied into one subset.
type SubsetReport struct {
	Subset Subset `json:"subset"`
	Images int    `json:"images"`
	Labels int    `json:"labels"`
}

// SplitReport summarizes a run. It is printed at the end and, when enabled,
// persisted as part of the split manifest.
type SplitReport struct {
	RunID       string         `json:"run_id"`
	DataPath    string         `json:"data_path"`
	OutputRoot  string         `json:"output_root"`
	Proportions Proportions    `json:"proportions"`
	Seed        *int64         `json:"seed,omitempty"`
	Counts      Counts         `json:"counts"`
	Subsets     []SubsetReport `json:"subsets,omitempty"`
	DryRun      bool           `json:"dry_run,omitempty"`
	ManifestID  string         `json:"manifest_id,omitempty"`
	StartedAt   time.Time      `json:"started_at"`
	EndedAt     time.Time      `json:"ended_at"`
}

// Manifest is the persisted record of which source files went to which subset.
type Manifest struct {
	Report  SplitReport                `json:"report"`
	Entries map[Subset][]ManifestEntry `json:"entries"`
}

type ManifestEntry struct {
	Image string `json:"image"`
	Label string `json:"label,omitempty"`
}

// NewManifest records the split with source paths.
func NewManifest(report SplitReport, res SplitResult) Manifest {
	m := Manifest{
		Report:  report,
		Entries: make(map[Subset][]ManifestEntry, 3),
	}
	for _, g := range res.Groups() {
		entries := make([]ManifestEntry, 0, len(g.Items))
		for _, it := range g.Items {
			entries = append(entries, ManifestEntry{Image: it.ImagePath, Label: it.LabelPath})
		}
		m.Entries[g.Subset] = entries
	}
	return m
}
