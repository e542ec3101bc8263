package chunkview

import (
	"testing"

	"github.com/pashafst/png-secret/internal/domain"
)

func mustChunk(t *testing.T, typ, data string) domain.Chunk {
	t.Helper()
	ct, err := domain.ParseChunkType(typ)
	if err != nil {
		t.Fatal(err)
	}
	return domain.NewChunk(ct, []byte(data))
}

func TestDescribe_OffsetsAndFlags(t *testing.T) {
	c := domain.NewContainer(
		mustChunk(t, "RuSt", "hello"),
		mustChunk(t, "teSt", "world!"),
	)

	got := Describe(c)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Offset != 8 {
		t.Fatalf("expected first offset 8, got %d", got[0].Offset)
	}
	if got[1].Offset != 8+12+5 {
		t.Fatalf("expected second offset 25, got %d", got[1].Offset)
	}
	if got[1].Index != 1 || got[1].Type != "teSt" || got[1].Length != 6 || got[1].Data != "world!" {
		t.Fatalf("unexpected entry: %+v", got[1])
	}
	if want := "critical, private, reserved-ok, safe-to-copy"; got[0].Flags() != want {
		t.Fatalf("expected %q, got %q", want, got[0].Flags())
	}
	if want := "ancillary, private, reserved-ok, safe-to-copy"; got[1].Flags() != want {
		t.Fatalf("expected %q, got %q", want, got[1].Flags())
	}
}

func TestDescribe_Empty(t *testing.T) {
	if got := Describe(domain.NewContainer()); len(got) != 0 {
		t.Fatalf("expected no entries, got %d", len(got))
	}
}

func TestHex(t *testing.T) {
	e := Describe(domain.NewContainer(mustChunk(t, "teSt", "hello")))[0]
	if got := e.Hex(-1); got != "68 65 6c 6c 6f" {
		t.Fatalf("unexpected hex %q", got)
	}
	if got := e.Hex(2); got != "68 65 …" {
		t.Fatalf("unexpected truncated hex %q", got)
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 3, "hel…"},
		{"héllo", 2, "hé…"},
		{"x", 0, ""},
	}
	for _, c := range cases {
		if got := Clamp(c.in, c.max); got != c.want {
			t.Errorf("Clamp(%q, %d) = %q, want %q", c.in, c.max, got, c.want)
		}
	}
}

func TestOneLine(t *testing.T) {
	if got := OneLine("a\nb\tc\x00"); got != "a b c·" {
		t.Fatalf("unexpected %q", got)
	}
}
