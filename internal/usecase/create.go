package usecase

import (
	"context"
	"errors"

	"github.com/pashafst/png-secret/internal/domain"
	"github.com/pashafst/png-secret/internal/ports"
)

// FileChecker reports whether a path already exists.
type FileChecker interface {
	Exists(path string) bool
}

type Create struct {
	writer  ports.ContainerWriter
	checker FileChecker
	opts    options
}

func NewCreate(writer ports.ContainerWriter, checker FileChecker, opts ...Option) *Create {
	return &Create{writer: writer, checker: checker, opts: buildOptions(opts)}
}

// Execute writes a container holding only the signature. An existing file is
// kept unless force is set.
func (uc *Create) Execute(ctx context.Context, path string, force bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !force && uc.checker != nil && uc.checker.Exists(path) {
		return &domain.OpError{
			Op:   "usecase.create",
			Kind: domain.KindExecution,
			Path: path,
			Err:  errors.New("file already exists (use --force to overwrite)"),
		}
	}

	if err := uc.writer.WriteContainer(path, domain.NewContainer()); err != nil {
		return err
	}

	uc.opts.log.Info("container.created", "path", path, "force", force)
	return nil
}
