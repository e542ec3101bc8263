// Package chunkview turns a container into display rows shared by the print
// command and the browse TUI.
package chunkview

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/pashafst/png-secret/internal/domain"
)

// Entry is one chunk plus where it sits in the serialized file.
type Entry struct {
	Index            int    `json:"index"`
	Offset           int    `json:"offset"`
	Type             string `json:"type"`
	Length           uint32 `json:"length"`
	CRC              uint32 `json:"crc"`
	Critical         bool   `json:"critical"`
	Public           bool   `json:"public"`
	ReservedBitValid bool   `json:"reserved_bit_valid"`
	SafeToCopy       bool   `json:"safe_to_copy"`
	Data             string `json:"data"`

	raw []byte
}

// Describe lists the chunks of c in order. Offsets count from the start of
// the file, so the first chunk sits right after the signature.
func Describe(c *domain.Container) []Entry {
	chunks := c.Chunks()
	out := make([]Entry, 0, len(chunks))

	off := len(c.Header())
	for i, ch := range chunks {
		t := ch.Type()
		out = append(out, Entry{
			Index:            i,
			Offset:           off,
			Type:             t.String(),
			Length:           ch.Length(),
			CRC:              ch.CRC(),
			Critical:         t.IsCritical(),
			Public:           t.IsPublic(),
			ReservedBitValid: t.IsReservedBitValid(),
			SafeToCopy:       t.IsSafeToCopy(),
			Data:             ch.DataString(),
			raw:              ch.Data(),
		})
		off += ch.Size()
	}
	return out
}

// Flags renders the four type flags as words, e.g. "critical, private,
// reserved-ok, safe-to-copy".
func (e Entry) Flags() string {
	parts := make([]string, 0, 4)
	parts = append(parts, pick(e.Critical, "critical", "ancillary"))
	parts = append(parts, pick(e.Public, "public", "private"))
	parts = append(parts, pick(e.ReservedBitValid, "reserved-ok", "reserved-set"))
	parts = append(parts, pick(e.SafeToCopy, "safe-to-copy", "unsafe-to-copy"))
	return strings.Join(parts, ", ")
}

// Hex returns up to maxBytes of the payload as space-separated hex pairs.
func (e Entry) Hex(maxBytes int) string {
	b := e.raw
	truncated := false
	if maxBytes >= 0 && len(b) > maxBytes {
		b = b[:maxBytes]
		truncated = true
	}

	var sb strings.Builder
	for i, x := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(hex.EncodeToString([]byte{x}))
	}
	if truncated {
		sb.WriteString(" …")
	}
	return sb.String()
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}

// Clamp shortens s to maxLen runes, marking the cut with an ellipsis.
func Clamp(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// OneLine replaces control characters so payload text fits a single row.
func OneLine(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return ' '
		}
		if r < 0x20 || r == 0x7f {
			return '·'
		}
		return r
	}, s)
}
