package domain

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf8"
)

// chunkOverhead is the size of the length, type and CRC fields.
const chunkOverhead = 12

// Chunk is a length-prefixed, type-tagged, checksummed payload. It is
// read-only once built; replacing a chunk means building a new one.
type Chunk struct {
	length uint32
	typ    ChunkType
	data   []byte
	crc    uint32
}

// NewChunk derives the length and CRC for data. The slice is copied.
func NewChunk(t ChunkType, data []byte) Chunk {
	d := make([]byte, len(data))
	copy(d, data)

	return Chunk{
		length: uint32(len(d)),
		typ:    t,
		data:   d,
		crc:    Checksum(t, d),
	}
}

// ParseChunk decodes exactly one serialized chunk. The declared length must
// match the payload found between the type field and the trailing CRC.
func ParseChunk(b []byte) (Chunk, error) {
	if len(b) < chunkOverhead {
		return Chunk{}, errTruncated(0, chunkOverhead, len(b))
	}

	length := binary.BigEndian.Uint32(b[0:4])

	var raw [4]byte
	copy(raw[:], b[4:8])
	t := ChunkTypeFromBytes(raw)
	if err := t.Validate(); err != nil {
		return Chunk{}, err
	}

	payload := b[8 : len(b)-4]
	if uint64(length) != uint64(len(payload)) {
		return Chunk{}, errLengthMismatch(length, len(payload))
	}

	stored := binary.BigEndian.Uint32(b[len(b)-4:])
	computed := Checksum(t, payload)
	if computed != stored {
		return Chunk{}, errInvalidChecksum(computed, stored)
	}

	data := make([]byte, len(payload))
	copy(data, payload)

	return Chunk{
		length: length,
		typ:    t,
		data:   data,
		crc:    stored,
	}, nil
}

func (c Chunk) Length() uint32 { return c.length }

func (c Chunk) Type() ChunkType { return c.typ }

func (c Chunk) CRC() uint32 { return c.crc }

// Data returns a copy of the payload.
func (c Chunk) Data() []byte {
	out := make([]byte, len(c.data))
	copy(out, c.data)
	return out
}

// Size is the number of bytes the chunk occupies when serialized.
func (c Chunk) Size() int { return chunkOverhead + len(c.data) }

// DataString decodes the payload as UTF-8. Each maximal invalid subpart (the
// longest prefix of a well-formed sequence, or a single byte) becomes one
// U+FFFD.
func (c Chunk) DataString() string {
	if utf8.Valid(c.data) {
		return string(c.data)
	}

	var b strings.Builder
	b.Grow(len(c.data))
	for rest := c.data; len(rest) > 0; {
		r, n := utf8.DecodeRune(rest)
		if r == utf8.RuneError && n == 1 {
			n = invalidPrefixLen(rest)
		}
		b.WriteRune(r)
		rest = rest[n:]
	}
	return b.String()
}

// invalidPrefixLen returns the length of the maximal subpart at the start of
// b. b must not start with a well-formed sequence.
func invalidPrefixLen(b []byte) int {
	lo, hi, need := byte(0x80), byte(0xBF), 0
	switch c := b[0]; {
	case c >= 0xC2 && c <= 0xDF:
		need = 1
	case c == 0xE0:
		lo, need = 0xA0, 2
	case c >= 0xE1 && c <= 0xEC, c == 0xEE, c == 0xEF:
		need = 2
	case c == 0xED:
		hi, need = 0x9F, 2
	case c == 0xF0:
		lo, need = 0x90, 3
	case c >= 0xF1 && c <= 0xF3:
		need = 3
	case c == 0xF4:
		hi, need = 0x8F, 3
	default:
		return 1
	}

	n := 1
	for n <= need && n < len(b) && b[n] >= lo && b[n] <= hi {
		lo, hi = 0x80, 0xBF
		n++
	}
	return n
}

// Bytes serializes the chunk: length, type, payload, CRC (integers big-endian).
func (c Chunk) Bytes() []byte {
	out := make([]byte, 0, c.Size())
	out = binary.BigEndian.AppendUint32(out, c.length)
	out = append(out, c.typ[:]...)
	out = append(out, c.data...)
	out = binary.BigEndian.AppendUint32(out, c.crc)
	return out
}

func (c Chunk) String() string {
	return fmt.Sprintf("length: %d\nchunk_type: %s\ndata: %s\ncrc: %d\n",
		c.length, c.typ, c.DataString(), c.crc)
}
