package domain

// ChunkType is the 4-byte tag identifying a chunk. Bit 5 (0x20, the ASCII
// lowercase bit) of each byte carries a property flag:
//
//	byte 0: ancillary (set) / critical (clear)
//	byte 1: private (set) / public (clear)
//	byte 2: reserved; must be clear for the type to be valid
//	byte 3: safe to copy (set) / unsafe to copy (clear)
type ChunkType [4]byte

const flagBit byte = 1 << 5

// ChunkTypeFromBytes wraps raw bytes without checking them. Parsers use it
// and run their own validity checks.
func ChunkTypeFromBytes(b [4]byte) ChunkType {
	return ChunkType(b)
}

// ParseChunkType builds a ChunkType from a 4-letter ASCII string.
func ParseChunkType(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, errInvalidLength(s)
	}

	var t ChunkType
	for i := 0; i < 4; i++ {
		if !isASCIILetter(s[i]) {
			return ChunkType{}, errInvalidByte(s[i])
		}
		t[i] = s[i]
	}
	return t, nil
}

func isASCIILetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func (t ChunkType) Bytes() [4]byte { return t }

func (t ChunkType) IsCritical() bool { return t[0]&flagBit == 0 }

func (t ChunkType) IsPublic() bool { return t[1]&flagBit == 0 }

func (t ChunkType) IsReservedBitValid() bool { return t[2]&flagBit == 0 }

func (t ChunkType) IsSafeToCopy() bool { return t[3]&flagBit != 0 }

// IsValid reports whether the reserved bit is clear. The other three flags
// are informational.
func (t ChunkType) IsValid() bool { return t.IsReservedBitValid() }

func (t ChunkType) String() string { return string(t[:]) }

// Validate returns a KindInvalidChunkType error when the reserved bit is set.
func (t ChunkType) Validate() error {
	if !t.IsValid() {
		return errInvalidChunkType(t)
	}
	return nil
}
