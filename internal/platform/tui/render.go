package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile2048/internal/core"
)

// style returns the lipgloss style for a foreground/background pair.
// core.ColorDefault leaves the terminal's own colour in place.
func style(fg, bg core.Color) lipgloss.Style {
	s := lipgloss.NewStyle()
	if fg != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(fg.Hex()))
	}
	if bg != core.ColorDefault {
		s = s.Background(lipgloss.Color(bg.Hex()))
	}
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[[2]core.Color]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			// Collect consecutive cells with same colours
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.FG == core.ColorDefault && start.BG == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}

			k := [2]core.Color{start.FG, start.BG}
			st, ok := styles[k]
			if !ok {
				st = style(start.FG, start.BG)
				styles[k] = st
			}
			sb.WriteString(st.Render(run.String()))
		}
	}
	return sb.String()
}
