package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-battleship/internal/core"
)

// colorStyles maps semantic colors to terminal styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorWater:   lipgloss.NewStyle().Foreground(lipgloss.Color("24")),
	core.ColorShip:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorHit:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorMiss:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	core.ColorSunk:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorCursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
	core.ColorValid:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorInvalid: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorTitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorAlert:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
