package usecase

import (
	"github.com/pashafst/png-secret/internal/ports"
)

type InitProject struct {
	initializer ports.ProjectInitializer
	opts        options
}

func NewInitProject(initializer ports.ProjectInitializer, opts ...Option) *InitProject {
	return &InitProject{initializer: initializer, opts: buildOptions(opts)}
}

func (uc *InitProject) Execute(root string, force bool) error {
	if err := uc.initializer.Init(root, force); err != nil {
		return err
	}
	uc.opts.log.Info("project.initialized", "root", root, "force", force)
	return nil
}
