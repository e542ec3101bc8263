package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pashafst/png-secret/internal/domain"
	"github.com/pashafst/png-secret/internal/ports"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML config at path and applies it on top of defaults.
func Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if f := strings.ToLower(strings.TrimSpace(y.PNGSecret.Output.Format)); f != "" {
		if !domain.ValidFormat(f) {
			return cfg, &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("output.format %q: expected pretty|json|raw", f),
			}
		}
		cfg.Output.Format = f
	}
	if y.PNGSecret.Write.Backup != nil {
		cfg.Write.Backup = *y.PNGSecret.Write.Backup
	}
	if d := strings.TrimSpace(y.PNGSecret.Logging.Dir); d != "" {
		cfg.Logging.Dir = d
	}
	if y.PNGSecret.Logging.Debug != nil {
		cfg.Logging.Debug = *y.PNGSecret.Logging.Debug
	}

	return cfg, nil
}

// Resolved is the outcome of Resolve.
type Resolved struct {
	Config domain.Config
	// Root is the directory relative paths in Config are anchored to.
	Root string
	// Path is the config file used, or "" when defaults apply.
	Path string
}

// Resolve picks the config to use. An explicit path must exist. Otherwise the
// locator searches upward from startDir, and when nothing is found the
// defaults are rooted at startDir.
func Resolve(locator ports.ConfigLocator, explicit, startDir string) (Resolved, error) {
	p := strings.TrimSpace(explicit)
	if p == "" {
		found, err := locator.FindConfig(startDir)
		if err != nil {
			if domain.IsKind(err, domain.KindNotFound) {
				return Resolved{Config: domain.DefaultConfig(), Root: startDir}, nil
			}
			return Resolved{Config: domain.DefaultConfig(), Root: startDir}, err
		}
		p = found
	}

	cfg, err := Load(p)
	return Resolved{Config: cfg, Root: filepath.Dir(p), Path: p}, err
}
