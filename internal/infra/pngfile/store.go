package pngfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pashafst/png-secret/internal/domain"
	"github.com/pashafst/png-secret/internal/ports"
)

const defaultPerm fs.FileMode = 0o644

// Store reads and writes whole container files.
type Store struct {
	backup bool
}

type Option func(*Store)

// WithBackup keeps the previous content of an overwritten file as <path>.bak.
func WithBackup(enabled bool) Option {
	return func(s *Store) { s.backup = enabled }
}

func NewStore(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ContainerStore = (*Store)(nil)

func (s *Store) ReadContainer(path string) (*domain.Container, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "pngfile.read",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	c, err := domain.ParseContainer(b)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "pngfile.parse",
			Kind: domain.KindOf(err),
			Path: path,
			Err:  err,
		}
	}
	return c, nil
}

// WriteContainer serializes c and replaces path with it. The bytes land in a
// temp file next to path first and are renamed over it, so a failed write
// never leaves a partial file behind.
func (s *Store) WriteContainer(path string, c *domain.Container) error {
	if c == nil {
		return &domain.OpError{
			Op:   "pngfile.write",
			Kind: domain.KindExecution,
			Path: path,
			Err:  errors.New("container is nil"),
		}
	}

	perm := defaultPerm
	prev, statErr := os.Stat(path)
	if statErr == nil {
		perm = prev.Mode().Perm()
	}

	if s.backup && statErr == nil {
		if err := copyFile(path, path+".bak", perm); err != nil {
			return &domain.OpError{
				Op:   "pngfile.backup",
				Kind: domain.KindExecution,
				Path: path + ".bak",
				Err:  err,
			}
		}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &domain.OpError{
				Op:   "pngfile.mkdir",
				Kind: domain.KindExecution,
				Path: dir,
				Err:  err,
			}
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, c.Bytes(), perm); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "pngfile.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "pngfile.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

// Exists reports whether path names an existing file.
func (s *Store) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func copyFile(src, dst string, perm fs.FileMode) error {
	b, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, b, perm)
}
