package cli

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pashafst/png-secret/internal/domain"
	"github.com/pashafst/png-secret/internal/infra/config"
	"github.com/pashafst/png-secret/internal/infra/logger"
	"github.com/pashafst/png-secret/internal/infra/pngfile"
)

type appCtx struct {
	root string
	cfg  domain.Config

	store *pngfile.Store
	log   *slog.Logger

	cleanup func() error
}

// loadApp resolves config, wires the file store and sets up logging. File
// logging is enabled only when a config file was found or debug is on, so
// plain runs leave no log directory behind.
func loadApp(g *globalFlags) (*appCtx, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	res, err := config.Resolve(config.NewFinder(), g.config, wd)
	if err != nil {
		return nil, err
	}
	cfg := res.Config
	debug := g.debug || cfg.Logging.Debug

	a := &appCtx{
		root:  res.Root,
		cfg:   cfg,
		store: pngfile.NewStore(pngfile.WithBackup(cfg.Write.Backup)),
		log:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}

	if res.Path != "" || debug {
		cleanup, lerr := logger.Setup(logger.Config{
			Root:  res.Root,
			Dir:   cfg.Logging.Dir,
			Debug: debug,
		})
		if lerr == nil {
			a.cleanup = cleanup
			a.log = logger.L()
		}
	}

	a.log.Debug("app.loaded", "root", a.root, "config", res.Path, "backup", cfg.Write.Backup)
	return a, nil
}

func (a *appCtx) close() {
	if a.cleanup != nil {
		_ = a.cleanup()
	}
}
