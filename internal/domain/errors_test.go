package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &DomainError{
		Kind:  KindInvalidHeader,
		Msg:   "bad header",
		Cause: root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *DomainError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match DomainError")
	}
	if got.Kind != KindInvalidHeader {
		t.Fatalf("expected kind %s", KindInvalidHeader)
	}
}

func TestIsKindForDomainError(t *testing.T) {
	err := &DomainError{
		Kind: KindInvalidChecksum,
		Msg:  "invalid",
	}

	if !IsKind(err, KindInvalidChecksum) {
		t.Fatalf("expected IsKind to match domain error")
	}
	if IsKind(err, KindInvalidHeader) {
		t.Fatalf("expected IsKind to reject other kinds")
	}
}

func TestIsKindThroughOpError(t *testing.T) {
	inner := errChunkTypeDoesNotExist("teSt")
	err := fmt.Errorf("decode: %w", &OpError{
		Op:   "pngfile.parse",
		Kind: KindExecution,
		Path: "x.png",
		Err:  inner,
	})

	if !IsKind(err, KindChunkTypeDoesNotExist) {
		t.Fatalf("expected inner domain kind to match")
	}
	if !IsKind(err, KindExecution) {
		t.Fatalf("expected outer op kind to match")
	}
	if got := KindOf(err); got != KindChunkTypeDoesNotExist {
		t.Fatalf("expected KindOf to prefer domain kind, got %s", got)
	}
}

func TestKindOf_Unclassified(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != "" {
		t.Fatalf("expected empty kind, got %s", got)
	}
	if got := KindOf(nil); got != "" {
		t.Fatalf("expected empty kind for nil, got %s", got)
	}
}

func TestOpErrorMessage(t *testing.T) {
	err := &OpError{Op: "pngfile.read", Kind: KindNotFound, Path: "a.png", Err: ErrNotFound}
	want := "pngfile.read: not_found (path=a.png): not found"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}
