package usecase

import (
	"errors"
	"testing"
)

type fakeInitializer struct {
	root  string
	force bool
	err   error
	calls int
}

func (f *fakeInitializer) Init(root string, force bool) error {
	f.calls++
	f.root, f.force = root, force
	return f.err
}

func TestInitProject_DelegatesToInitializer(t *testing.T) {
	fi := &fakeInitializer{}
	if err := NewInitProject(fi).Execute("/tmp/project", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fi.calls != 1 || fi.root != "/tmp/project" || !fi.force {
		t.Fatalf("unexpected call: %+v", fi)
	}
}

func TestInitProject_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	fi := &fakeInitializer{err: boom}
	if err := NewInitProject(fi).Execute(".", false); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
