package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Toast    lipgloss.Style
	Card     lipgloss.Style

	// Critical and Ancillary tag the chunk on its detail card.
	Critical  lipgloss.Style
	Ancillary lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Toast:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Critical:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Ancillary: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
}

func (t Theme) badge(critical bool) string {
	if critical {
		return t.Critical.Render("[critical]")
	}
	return t.Ancillary.Render("[ancillary]")
}
