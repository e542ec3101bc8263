package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pashafst/png-secret/internal/domain"
	"github.com/pashafst/png-secret/internal/ports"
)

// DefaultFileName is the config file searched for by Finder.
const DefaultFileName = ".pngsecret.yaml"

// Finder locates a config file by searching upward from a start directory.
type Finder struct {
	ConfigFile string // defaults to ".pngsecret.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: DefaultFileName}
}

var _ ports.ConfigLocator = (*Finder)(nil)

func (f *Finder) FindConfig(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "config.find",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "config.find",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// If user passes a file path, use its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	cur := filepath.Clean(abs)
	for {
		p := filepath.Join(cur, f.ConfigFile)
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			// Reached filesystem root.
			return "", &domain.OpError{
				Op:   "config.find",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}
