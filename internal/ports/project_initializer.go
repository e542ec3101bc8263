package ports

// ProjectInitializer scaffolds the per-project config and log directory.
type ProjectInitializer interface {
	Init(root string, force bool) error
}
