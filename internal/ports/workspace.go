package ports

import "github.com/aalvaropc/aocinput/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
