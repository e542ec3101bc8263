package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/pashafst/png-secret/internal/app/chunkview"
	"github.com/pashafst/png-secret/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true)
	typeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
)

func printContainer(w io.Writer, path string, c *domain.Container, format string) error {
	switch format {
	case domain.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"file":   path,
			"size":   c.Size(),
			"chunks": chunkview.Describe(c),
		}
		return enc.Encode(payload)
	case domain.FormatRaw:
		for _, ch := range c.Chunks() {
			fmt.Fprintln(w, ch)
		}
		return nil
	case domain.FormatPretty, "":
		printPrettyContainer(w, path, c)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|raw)", format)
	}
}

func printPrettyContainer(w io.Writer, path string, c *domain.Container) {
	fmt.Fprintln(w, titleStyle.Render(path))
	fmt.Fprintf(w, "%s %s, %d chunk(s)\n\n",
		labelStyle.Render("Size:"), humanize.Bytes(uint64(c.Size())), c.Len())

	for _, e := range chunkview.Describe(c) {
		fmt.Fprintf(w, "[%d] %s  %s  %s\n",
			e.Index,
			typeStyle.Render(e.Type),
			humanize.Bytes(uint64(e.Length)),
			labelStyle.Render(fmt.Sprintf("@%d", e.Offset)),
		)
		fmt.Fprintf(w, "  %s %s\n", labelStyle.Render("flags:"), e.Flags())
		fmt.Fprintf(w, "  %s   %08x\n", labelStyle.Render("crc:"), e.CRC)
		fmt.Fprintf(w, "  %s  %s\n", labelStyle.Render("data:"), chunkview.Clamp(chunkview.OneLine(e.Data), 72))
		fmt.Fprintln(w)
	}
}
