package domain

import "testing"

func mustType(t *testing.T, s string) ChunkType {
	t.Helper()
	ct, err := ParseChunkType(s)
	if err != nil {
		t.Fatalf("ParseChunkType(%q): %v", s, err)
	}
	return ct
}

func TestChunkTypeFromBytes(t *testing.T) {
	want := [4]byte{82, 117, 83, 116}
	got := ChunkTypeFromBytes(want)
	if got.Bytes() != want {
		t.Fatalf("expected %v, got %v", want, got.Bytes())
	}
}

func TestParseChunkType_EqualsFromBytes(t *testing.T) {
	if mustType(t, "RuSt") != ChunkTypeFromBytes([4]byte{82, 117, 83, 116}) {
		t.Fatalf("expected structural equality")
	}
}

func TestChunkTypeFlags(t *testing.T) {
	cases := []struct {
		in        string
		critical  bool
		public    bool
		reserved  bool
		safeCopy  bool
		wantValid bool
	}{
		{"RuSt", true, false, true, true, true},
		{"ruSt", false, false, true, true, true},
		{"RUSt", true, true, true, true, true},
		{"RuST", true, false, true, false, true},
		{"Rust", true, false, false, true, false},
	}
	for _, c := range cases {
		ct := mustType(t, c.in)
		if got := ct.IsCritical(); got != c.critical {
			t.Errorf("%s: IsCritical=%v, want %v", c.in, got, c.critical)
		}
		if got := ct.IsPublic(); got != c.public {
			t.Errorf("%s: IsPublic=%v, want %v", c.in, got, c.public)
		}
		if got := ct.IsReservedBitValid(); got != c.reserved {
			t.Errorf("%s: IsReservedBitValid=%v, want %v", c.in, got, c.reserved)
		}
		if got := ct.IsSafeToCopy(); got != c.safeCopy {
			t.Errorf("%s: IsSafeToCopy=%v, want %v", c.in, got, c.safeCopy)
		}
		if got := ct.IsValid(); got != c.wantValid {
			t.Errorf("%s: IsValid=%v, want %v", c.in, got, c.wantValid)
		}
	}
}

func TestParseChunkType_Errors(t *testing.T) {
	cases := []struct {
		in   string
		kind ErrorKind
		b    byte
	}{
		{"", KindInvalidLength, 0},
		{"Rus", KindInvalidLength, 0},
		{"RuStx", KindInvalidLength, 0},
		{"Ru1t", KindInvalidByte, '1'},
		{"R@St", KindInvalidByte, '@'},
		{"Ru[t", KindInvalidByte, '['},
	}
	for _, c := range cases {
		_, err := ParseChunkType(c.in)
		if err == nil {
			t.Errorf("%q: expected error", c.in)
			continue
		}
		if !IsKind(err, c.kind) {
			t.Errorf("%q: expected kind %s, got %v", c.in, c.kind, err)
		}
		if c.kind == KindInvalidByte {
			de := err.(*DomainError)
			if de.Byte != c.b {
				t.Errorf("%q: expected offending byte %q, got %q", c.in, c.b, de.Byte)
			}
		}
	}
}

func TestParseChunkType_MultibyteStringCountsBytes(t *testing.T) {
	// "é" is two bytes, so "éab" has length 4.
	_, err := ParseChunkType("éab")
	if !IsKind(err, KindInvalidByte) {
		t.Fatalf("expected invalid byte for 4-byte non-ASCII input, got %v", err)
	}
}

func TestChunkTypeString(t *testing.T) {
	if got := mustType(t, "RuSt").String(); got != "RuSt" {
		t.Fatalf("expected RuSt, got %q", got)
	}
}

func TestChunkTypeValidate(t *testing.T) {
	if err := mustType(t, "RuSt").Validate(); err != nil {
		t.Fatalf("expected RuSt to validate, got %v", err)
	}
	if err := mustType(t, "Rust").Validate(); !IsKind(err, KindInvalidChunkType) {
		t.Fatalf("expected invalid chunk type, got %v", err)
	}
}
