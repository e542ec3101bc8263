package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/pashafst/png-secret/internal/app/chunkview"
	"github.com/pashafst/png-secret/internal/domain"
)

type screen int

const (
	screenList screen = iota
	screenDetail
)

func (s screen) String() string {
	switch s {
	case screenList:
		return "list"
	case screenDetail:
		return "detail"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

const hexPreviewBytes = 64

type chunkItem struct {
	entry chunkview.Entry
}

func (c chunkItem) Title() string {
	return fmt.Sprintf("%d. %s", c.entry.Index, c.entry.Type)
}

func (c chunkItem) Description() string {
	return fmt.Sprintf("%s • %s", humanize.Bytes(uint64(c.entry.Length)),
		chunkview.Clamp(chunkview.OneLine(c.entry.Data), 48))
}

func (c chunkItem) FilterValue() string { return c.entry.Type }

type model struct {
	theme Theme
	deps  Deps

	scr      screen
	chunks   list.Model
	selected chunkview.Entry
	size     int
	toast    string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	c := deps.Container
	if c == nil {
		c = domain.NewContainer()
	}

	entries := chunkview.Describe(c)
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, chunkItem{entry: e})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Chunks"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme:  t,
		deps:   deps,
		scr:    screenList,
		chunks: l,
		size:   c.Size(),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.chunks.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case tea.KeyMsg:
		if m.scr == screenList && m.chunks.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.scr == screenList {
				return m, tea.Quit
			}
			m.scr = screenList
			return m, nil

		case "enter":
			if m.scr == screenList {
				it, ok := m.chunks.SelectedItem().(chunkItem)
				if !ok {
					return m, nil
				}
				m.selected = it.entry
				m.scr = screenDetail
				m.toast = ""
				return m, nil
			}

		case "esc", "b":
			if m.scr != screenList {
				m.scr = screenList
				return m, nil
			}
		}
	}

	if m.scr == screenList {
		var cmd tea.Cmd
		m.chunks, cmd = m.chunks.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("pngsecret") + "\n" +
		m.theme.Subtitle.Render(fmt.Sprintf("%s — %s, %d chunk(s)", m.deps.Path, humanize.Bytes(uint64(m.size)), len(m.chunks.Items()))) + "\n"

	var toast string
	if m.toast != "" {
		toast = m.theme.Toast.Render(m.toast) + "\n"
	}

	switch m.scr {
	case screenList:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • / filter • q quit")
		if len(m.chunks.Items()) == 0 {
			return wrap.Render(header + "\n" + toast + m.theme.Card.Render("(no chunks)") + "\n" + help)
		}
		return wrap.Render(header + "\n" + toast + m.theme.Card.Render(m.chunks.View()) + "\n" + help)

	case screenDetail:
		card := m.theme.Card.Render(
			fmt.Sprintf("%s\n\n%s\n\n%s",
				m.theme.Title.Render(m.selected.Type)+"  "+m.theme.badge(m.selected.Critical),
				renderDetail(m.selected),
				m.theme.Help.Render("esc/b back • q list • ctrl+c quit"),
			),
		)
		return wrap.Render(header + "\n" + card)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func renderDetail(e chunkview.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Index:  %d\n", e.Index)
	fmt.Fprintf(&b, "Offset: %d\n", e.Offset)
	fmt.Fprintf(&b, "Length: %d (%s)\n", e.Length, humanize.Bytes(uint64(e.Length)))
	fmt.Fprintf(&b, "CRC:    %08x\n", e.CRC)
	fmt.Fprintf(&b, "Flags:  %s\n\n", e.Flags())
	b.WriteString("Text:\n")
	b.WriteString(chunkview.Clamp(e.Data, 512))
	b.WriteString("\n\nHex:\n")
	b.WriteString(e.Hex(hexPreviewBytes))
	return b.String()
}
