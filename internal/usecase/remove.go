package usecase

import (
	"context"

	"github.com/pashafst/png-secret/internal/domain"
	"github.com/pashafst/png-secret/internal/ports"
)

type Remove struct {
	store ports.ContainerStore
	opts  options
}

func NewRemove(store ports.ContainerStore, opts ...Option) *Remove {
	return &Remove{store: store, opts: buildOptions(opts)}
}

// Execute drops the first chunk of chunkType from the file at path and
// rewrites it. The file is untouched when the type is absent.
func (uc *Remove) Execute(ctx context.Context, path, chunkType string) (domain.Chunk, error) {
	if err := ctx.Err(); err != nil {
		return domain.Chunk{}, err
	}

	c, err := uc.store.ReadContainer(path)
	if err != nil {
		return domain.Chunk{}, err
	}

	removed, err := c.RemoveByType(chunkType)
	if err != nil {
		return domain.Chunk{}, err
	}

	if err := ctx.Err(); err != nil {
		return domain.Chunk{}, err
	}
	if err := uc.store.WriteContainer(path, c); err != nil {
		return domain.Chunk{}, err
	}

	uc.opts.log.Info("chunk.removed",
		"path", path,
		"type", chunkType,
		"length", removed.Length(),
		"remaining", c.Len(),
	)
	return removed, nil
}
