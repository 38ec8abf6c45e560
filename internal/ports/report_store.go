package ports

import "github.com/aalvaropc/datasplit/internal/domain"

// ReportStore persists split manifests for reproducibility.
type ReportStore interface {
	SaveManifest(m domain.Manifest) (id string, err error)
}
