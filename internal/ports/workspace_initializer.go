package ports

import "github.com/aalvaropc/datasplit/internal/domain"

// WorkspaceInitializer writes a starter datasplit.yaml into a directory.
type WorkspaceInitializer interface {
	Init(root string, cfg domain.Config, force bool) (bool, error)
}
