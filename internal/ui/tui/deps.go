package tui

import (
	"log/slog"

	"github.com/pashafst/png-secret/internal/domain"
)

type Deps struct {
	Path      string
	Container *domain.Container

	Logger *slog.Logger
	Debug  bool
}
