package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/anillaksu/neonsurvivor/internal/core"
)

// colorStyles maps core.Color to lipgloss styles in the neon palette.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("201")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("87")).Bold(true),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true),
	core.ColorNeonPink:     lipgloss.NewStyle().Foreground(lipgloss.Color("198")).Bold(true),
	core.ColorGrid:         lipgloss.NewStyle().Foreground(lipgloss.Color("23")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
