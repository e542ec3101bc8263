package domain

import (
	"bytes"
	"encoding/binary"
)

// signature is the fixed 8-byte header every container starts with.
const signature = "\x89PNG\r\n\x1a\n"

// Container is an ordered list of chunks behind the fixed signature. It is
// not safe for concurrent use; callers sharing one must lock around it.
type Container struct {
	chunks []Chunk
}

func NewContainer(chunks ...Chunk) *Container {
	c := &Container{chunks: make([]Chunk, 0, len(chunks))}
	c.chunks = append(c.chunks, chunks...)
	return c
}

// ParseContainer checks the signature and then decodes chunks back to back
// until the buffer is exhausted. Each chunk is framed by its length field;
// the first failing chunk aborts the parse.
func ParseContainer(b []byte) (*Container, error) {
	if !bytes.HasPrefix(b, []byte(signature)) {
		return nil, errInvalidHeader()
	}

	c := NewContainer()
	off := len(signature)
	for off < len(b) {
		rest := b[off:]
		if len(rest) < chunkOverhead {
			return nil, errTruncated(off, chunkOverhead, len(rest))
		}

		need := uint64(chunkOverhead) + uint64(binary.BigEndian.Uint32(rest[0:4]))
		if need > uint64(len(rest)) {
			return nil, errTruncated(off, need, len(rest))
		}

		ch, err := ParseChunk(rest[:need])
		if err != nil {
			return nil, err
		}
		c.chunks = append(c.chunks, ch)
		off += int(need)
	}
	return c, nil
}

// Header returns a copy of the signature.
func (c *Container) Header() [8]byte {
	var h [8]byte
	copy(h[:], signature)
	return h
}

// Append adds ch after the existing chunks.
func (c *Container) Append(ch Chunk) {
	c.chunks = append(c.chunks, ch)
}

// FindByType returns the first chunk whose type renders as typ.
func (c *Container) FindByType(typ string) (Chunk, bool) {
	i := c.indexOf(typ)
	if i < 0 {
		return Chunk{}, false
	}
	return c.chunks[i], true
}

// ChunkByType is FindByType with a KindChunkTypeDoesNotExist error instead
// of a boolean.
func (c *Container) ChunkByType(typ string) (Chunk, error) {
	ch, ok := c.FindByType(typ)
	if !ok {
		return Chunk{}, errChunkTypeDoesNotExist(typ)
	}
	return ch, nil
}

// RemoveByType drops the first chunk of type typ, keeping the order of the
// rest, and returns it.
func (c *Container) RemoveByType(typ string) (Chunk, error) {
	i := c.indexOf(typ)
	if i < 0 {
		return Chunk{}, errChunkTypeDoesNotExist(typ)
	}

	removed := c.chunks[i]
	c.chunks = append(c.chunks[:i], c.chunks[i+1:]...)
	return removed, nil
}

func (c *Container) indexOf(typ string) int {
	for i, ch := range c.chunks {
		if ch.Type().String() == typ {
			return i
		}
	}
	return -1
}

// Chunks returns the chunks in order. The slice is a copy.
func (c *Container) Chunks() []Chunk {
	out := make([]Chunk, len(c.chunks))
	copy(out, c.chunks)
	return out
}

func (c *Container) Len() int { return len(c.chunks) }

// Size is the serialized length in bytes.
func (c *Container) Size() int {
	n := len(signature)
	for _, ch := range c.chunks {
		n += ch.Size()
	}
	return n
}

// Bytes serializes the signature followed by every chunk in order.
func (c *Container) Bytes() []byte {
	out := make([]byte, 0, c.Size())
	out = append(out, signature...)
	for _, ch := range c.chunks {
		out = append(out, ch.Bytes()...)
	}
	return out
}
