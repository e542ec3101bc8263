package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pashafst/png-secret/internal/domain"
)

func TestFindConfig_FindsFileFromNestedDir(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "proj")
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	want := filepath.Join(root, DefaultFileName)
	if err := os.WriteFile(want, []byte("pngsecret:\n  write:\n    backup: true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	got, err := NewFinder().FindConfig(nested)
	if err != nil {
		t.Fatalf("FindConfig returned error: %v", err)
	}
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestFindConfig_StartFromFilePath(t *testing.T) {
	tmp := t.TempDir()
	want := filepath.Join(tmp, DefaultFileName)
	if err := os.WriteFile(want, []byte("pngsecret: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	img := filepath.Join(tmp, "image.png")
	if err := os.WriteFile(img, domain.NewContainer().Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewFinder().FindConfig(img)
	if err != nil {
		t.Fatalf("FindConfig returned error: %v", err)
	}
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestFindConfig_NotFound(t *testing.T) {
	tmp := t.TempDir()
	_ = os.MkdirAll(filepath.Join(tmp, "a", "b"), 0o755)

	f := &Finder{ConfigFile: "pngsecret-test-does-not-exist.yaml"}
	_, err := f.FindConfig(filepath.Join(tmp, "a", "b"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestFindConfig_EmptyStartDir(t *testing.T) {
	_, err := NewFinder().FindConfig("")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
}
