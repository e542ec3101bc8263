package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound  = errors.New("not found")
	ErrExecution = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidLength         ErrorKind = "invalid_length"
	KindInvalidByte           ErrorKind = "invalid_byte"
	KindInvalidChunkType      ErrorKind = "invalid_chunk_type"
	KindInvalidChecksum       ErrorKind = "invalid_checksum"
	KindInvalidHeader         ErrorKind = "invalid_header"
	KindChunkTypeDoesNotExist ErrorKind = "chunk_type_does_not_exist"
	KindLengthMismatch        ErrorKind = "length_mismatch"
	KindTruncated             ErrorKind = "truncated"

	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindExecution     ErrorKind = "execution"
)

// DomainError reports a violation of the container format or a failed lookup.
//
// Byte is set for KindInvalidByte and Checksum (the recomputed CRC) for
// KindInvalidChecksum. Msg is meant for humans; branch on Kind.
type DomainError struct {
	Kind     ErrorKind
	Msg      string
	Byte     byte
	Checksum uint32
	Cause    error
}

func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func errInvalidLength(s string) error {
	return &DomainError{
		Kind: KindInvalidLength,
		Msg:  fmt.Sprintf("invalid chunk type %q: length must be 4 bytes, got %d", s, len(s)),
	}
}

func errInvalidByte(b byte) error {
	return &DomainError{
		Kind: KindInvalidByte,
		Msg:  fmt.Sprintf("invalid chunk type byte %d: must be an ASCII letter", b),
		Byte: b,
	}
}

func errInvalidChunkType(t ChunkType) error {
	return &DomainError{
		Kind: KindInvalidChunkType,
		Msg:  fmt.Sprintf("invalid chunk type %q: reserved bit is set", t.String()),
	}
}

func errInvalidChecksum(computed, stored uint32) error {
	return &DomainError{
		Kind:     KindInvalidChecksum,
		Msg:      fmt.Sprintf("invalid checksum: computed %08x, stored %08x", computed, stored),
		Checksum: computed,
	}
}

func errInvalidHeader() error {
	return &DomainError{
		Kind: KindInvalidHeader,
		Msg:  "invalid header: input does not start with the PNG signature",
	}
}

func errChunkTypeDoesNotExist(typ string) error {
	return &DomainError{
		Kind: KindChunkTypeDoesNotExist,
		Msg:  fmt.Sprintf("chunk type %q does not exist", typ),
	}
}

func errLengthMismatch(declared uint32, actual int) error {
	return &DomainError{
		Kind: KindLengthMismatch,
		Msg:  fmt.Sprintf("chunk length field is %d but payload has %d bytes", declared, actual),
	}
}

func errTruncated(offset int, need uint64, have int) error {
	return &DomainError{
		Kind: KindTruncated,
		Msg:  fmt.Sprintf("truncated chunk at offset %d: need %d bytes, have %d", offset, need, have),
	}
}

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
// Both wrapper types in the chain are consulted, so an OpError around a
// DomainError matches either kind.
func IsKind(err error, kind ErrorKind) bool {
	var de *DomainError
	if errors.As(err, &de) && de.Kind == kind {
		return true
	}
	var oe *OpError
	if errors.As(err, &oe) && oe.Kind == kind {
		return true
	}
	return false
}

// KindOf returns the most specific kind found in err's chain, or "" if none.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}
