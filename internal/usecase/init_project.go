package usecase

import (
	"github.com/aalvaropc/datasplit/internal/domain"
	"github.com/aalvaropc/datasplit/internal/ports"
)

type InitProject struct {
	initializer ports.WorkspaceInitializer
}

func NewInitProject(initializer ports.WorkspaceInitializer) *InitProject {
	return &InitProject{initializer: initializer}
}

// Execute writes datasplit.yaml under root, seeded with cfg. It reports
// whether the file was written; an existing file is kept unless force is set.
func (uc *InitProject) Execute(root string, cfg domain.Config, force bool) (bool, error) {
	return uc.initializer.Init(root, cfg, force)
}
