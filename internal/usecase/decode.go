package usecase

import (
	"context"

	"github.com/pashafst/png-secret/internal/domain"
	"github.com/pashafst/png-secret/internal/ports"
)

type Decode struct {
	reader ports.ContainerReader
	opts   options
}

func NewDecode(reader ports.ContainerReader, opts ...Option) *Decode {
	return &Decode{reader: reader, opts: buildOptions(opts)}
}

// Execute returns the first chunk of chunkType. A missing type is reported as
// KindChunkTypeDoesNotExist, same as Remove.
func (uc *Decode) Execute(ctx context.Context, path, chunkType string) (domain.Chunk, error) {
	if err := ctx.Err(); err != nil {
		return domain.Chunk{}, err
	}

	c, err := uc.reader.ReadContainer(path)
	if err != nil {
		return domain.Chunk{}, err
	}

	ch, err := c.ChunkByType(chunkType)
	if err != nil {
		uc.opts.log.Debug("chunk.decode_miss", "path", path, "type", chunkType)
		return domain.Chunk{}, err
	}

	uc.opts.log.Debug("chunk.decoded", "path", path, "type", chunkType, "length", ch.Length())
	return ch, nil
}
