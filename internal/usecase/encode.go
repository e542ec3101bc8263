package usecase

import (
	"context"
	"strings"

	"github.com/pashafst/png-secret/internal/domain"
	"github.com/pashafst/png-secret/internal/ports"
)

type EncodeInput struct {
	Path      string
	ChunkType string
	Message   string
	// Output is where the result is written; empty means Path.
	Output string
}

type Encode struct {
	store ports.ContainerStore
	opts  options
}

func NewEncode(store ports.ContainerStore, opts ...Option) *Encode {
	return &Encode{store: store, opts: buildOptions(opts)}
}

// Execute appends a chunk holding in.Message to the container at in.Path and
// writes the result. The chunk type is validated before the file is read.
func (uc *Encode) Execute(ctx context.Context, in EncodeInput) (domain.Chunk, error) {
	if err := ctx.Err(); err != nil {
		return domain.Chunk{}, err
	}

	ct, err := domain.ParseChunkType(in.ChunkType)
	if err != nil {
		return domain.Chunk{}, err
	}
	// A chunk with the reserved bit set could never be read back.
	if err := ct.Validate(); err != nil {
		return domain.Chunk{}, err
	}

	c, err := uc.store.ReadContainer(in.Path)
	if err != nil {
		return domain.Chunk{}, err
	}

	ch := domain.NewChunk(ct, []byte(in.Message))
	c.Append(ch)

	if err := ctx.Err(); err != nil {
		return domain.Chunk{}, err
	}

	out := in.Path
	if strings.TrimSpace(in.Output) != "" {
		out = in.Output
	}
	if err := uc.store.WriteContainer(out, c); err != nil {
		return domain.Chunk{}, err
	}

	uc.opts.log.Info("chunk.encoded",
		"path", in.Path,
		"output", out,
		"type", ct.String(),
		"length", ch.Length(),
		"crc", ch.CRC(),
	)
	return ch, nil
}
