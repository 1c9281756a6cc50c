package color

import (
	"fmt"
	"strings"

	"huectl/internal/scheme"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Faint(true)
)

// Swatch renders the colour as a block with its hex value in a readable
// foreground.
func Swatch(c scheme.Color) string {
	fg := "#000000"
	if c.Lightness() < 50 {
		fg = "#ffffff"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color("#"+c.Hex)).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 2).
		Render("#" + c.Hex)
}

// RenderPalette renders one line per slot in system order.
func RenderPalette(s *scheme.Scheme) string {
	slots := s.System.Slots()
	width := 0
	for _, slot := range slots {
		width = max(width, runewidth.StringWidth(slot))
	}

	lines := make([]string, 0, len(slots))
	for _, slot := range slots {
		c, ok := s.Palette[slot]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			labelStyle.Render(runewidth.FillRight(slot, width)),
			Swatch(c),
			mutedStyle.Render(fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)),
		))
	}
	return strings.Join(lines, "\n")
}

// RenderScheme renders the scheme's metadata followed by its palette.
func RenderScheme(s *scheme.Scheme) string {
	fields := [][2]string{
		{"ID", s.Identifier.String()},
		{"Name", s.Name},
		{"Author", s.Author},
		{"Variant", s.Variant},
		{"Description", s.Description},
		{"Path", s.Path},
	}

	var b strings.Builder
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(runewidth.FillRight(f[0]+":", 12)), f[1])
	}
	b.WriteString("\n")
	b.WriteString(RenderPalette(s))
	b.WriteString("\n")
	return b.String()
}
