package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

// safeModel keeps a panic in the browser from killing the terminal session.
// A crash on the detail card drops back to the list with a toast naming the
// chunk that failed.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			tm = s.recovered("tui.update", r)
			cmd = nil
		}
	}()

	inner, c := s.m.Update(msg)

	if mm, ok := inner.(model); ok {
		s.m = mm
	} else if sm, ok := inner.(safeModel); ok {
		s = sm
	}

	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("tui.view", r)
			out = fmt.Sprintf("pngsecret: cannot render %s (see logs)", s.m.deps.Path)
		}
	}()
	return s.m.View()
}

// recovered logs the panic and returns the model reset to the chunk list.
func (s safeModel) recovered(where string, r any) safeModel {
	s.logPanic(where, r)

	if s.m.scr == screenDetail {
		s.m.toast = fmt.Sprintf("Could not show chunk %d (%s), see logs", s.m.selected.Index, s.m.selected.Type)
	} else {
		s.m.toast = "Chunk list failed to update, see logs"
	}
	s.m.scr = screenList
	return s
}

func (s safeModel) logPanic(where string, r any) {
	attrs := []any{
		"where", where,
		"file", s.m.deps.Path,
		"screen", s.m.scr.String(),
	}
	if s.m.scr == screenDetail {
		attrs = append(attrs, "chunk", s.m.selected.Type, "index", s.m.selected.Index)
	}
	attrs = append(attrs, "panic", fmt.Sprint(r), "stack", string(debug.Stack()))
	s.log.Error("panic.recovered", attrs...)
}

var _ tea.Model = (*safeModel)(nil)
