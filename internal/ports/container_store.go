package ports

import "github.com/pashafst/png-secret/internal/domain"

// ContainerReader loads a whole container from a source (e.g., a file).
type ContainerReader interface {
	ReadContainer(path string) (*domain.Container, error)
}

// ContainerWriter persists a fully built container, replacing what was there.
type ContainerWriter interface {
	WriteContainer(path string, c *domain.Container) error
}

type ContainerStore interface {
	ContainerReader
	ContainerWriter
}
