package usecase

import (
	"context"
	"testing"

	"github.com/pashafst/png-secret/internal/domain"
)

func TestRemove_RemovesAndRewrites(t *testing.T) {
	a, _ := domain.ParseChunkType("FrSt")
	b, _ := domain.ParseChunkType("teSt")
	store := newMemStore()
	store.put("a.png", domain.NewContainer(
		domain.NewChunk(a, []byte("keep")),
		domain.NewChunk(b, []byte("drop")),
	))

	removed, err := NewRemove(store).Execute(context.Background(), "a.png", "teSt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed.DataString() != "drop" {
		t.Fatalf("unexpected removed chunk %q", removed.DataString())
	}

	c, _ := store.ReadContainer("a.png")
	if c.Len() != 1 {
		t.Fatalf("expected 1 chunk left, got %d", c.Len())
	}
	if _, ok := c.FindByType("teSt"); ok {
		t.Fatal("expected teSt to be gone")
	}
}

func TestRemove_MissingTypeLeavesFileUntouched(t *testing.T) {
	store := newMemStore()
	store.put("a.png", domain.NewContainer())

	_, err := NewRemove(store).Execute(context.Background(), "a.png", "teSt")
	if !domain.IsKind(err, domain.KindChunkTypeDoesNotExist) {
		t.Fatalf("expected chunk type does not exist, got %v", err)
	}
	if store.writes != 0 {
		t.Fatalf("expected no write, got %d", store.writes)
	}
}

func TestRemove_Twice(t *testing.T) {
	ct, _ := domain.ParseChunkType("teSt")
	store := newMemStore()
	store.put("a.png", domain.NewContainer(domain.NewChunk(ct, []byte("x"))))

	uc := NewRemove(store)
	if _, err := uc.Execute(context.Background(), "a.png", "teSt"); err != nil {
		t.Fatalf("first remove: %v", err)
	}
	if _, err := uc.Execute(context.Background(), "a.png", "teSt"); !domain.IsKind(err, domain.KindChunkTypeDoesNotExist) {
		t.Fatalf("expected second remove to fail, got %v", err)
	}
}
