package ports

// ConfigLocator finds the pngsecret config file starting from an arbitrary directory.
type ConfigLocator interface {
	FindConfig(startDir string) (string, error)
}
