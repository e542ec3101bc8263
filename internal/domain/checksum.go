package domain

import "hash/crc32"

// Checksum computes CRC-32/ISO-HDLC (the PNG/zlib CRC) over the chunk type
// followed by the payload.
func Checksum(t ChunkType, data []byte) uint32 {
	h := crc32.NewIEEE()
	_, _ = h.Write(t[:])
	_, _ = h.Write(data)
	return h.Sum32()
}
