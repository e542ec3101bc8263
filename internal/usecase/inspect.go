package usecase

import (
	"context"

	"github.com/pashafst/png-secret/internal/domain"
	"github.com/pashafst/png-secret/internal/ports"
)

type Inspect struct {
	reader ports.ContainerReader
	opts   options
}

func NewInspect(reader ports.ContainerReader, opts ...Option) *Inspect {
	return &Inspect{reader: reader, opts: buildOptions(opts)}
}

// Execute loads the container at path for printing or browsing.
func (uc *Inspect) Execute(ctx context.Context, path string) (*domain.Container, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c, err := uc.reader.ReadContainer(path)
	if err != nil {
		return nil, err
	}

	uc.opts.log.Debug("container.inspected", "path", path, "chunks", c.Len(), "bytes", c.Size())
	return c, nil
}
