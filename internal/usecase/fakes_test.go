package usecase

import (
	"github.com/pashafst/png-secret/internal/domain"
)

// memStore keeps serialized containers in memory, keyed by path, so every
// read goes through the real parser.
type memStore struct {
	files    map[string][]byte
	writes   int
	readErr  error
	writeErr error
}

func newMemStore() *memStore {
	return &memStore{files: map[string][]byte{}}
}

func (s *memStore) put(path string, c *domain.Container) {
	s.files[path] = c.Bytes()
}

func (s *memStore) ReadContainer(path string) (*domain.Container, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	b, ok := s.files[path]
	if !ok {
		return nil, &domain.OpError{Op: "memstore.read", Kind: domain.KindNotFound, Path: path, Err: domain.ErrNotFound}
	}
	return domain.ParseContainer(b)
}

func (s *memStore) WriteContainer(path string, c *domain.Container) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.writes++
	s.files[path] = c.Bytes()
	return nil
}

func (s *memStore) Exists(path string) bool {
	_, ok := s.files[path]
	return ok
}
