package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/KetsiaD/Snake-game-JKC/internal/core"
)

const paletteSize = 16

// cellStyles holds one style per foreground/background pair. It is built
// once and only read afterwards, so concurrent SSH sessions can share it.
var cellStyles = func() (t [paletteSize][paletteSize]lipgloss.Style) {
	for fg := 0; fg < paletteSize; fg++ {
		for bg := 0; bg < paletteSize; bg++ {
			t[fg][bg] = lipgloss.NewStyle().
				Foreground(ansiColor(core.Color(fg))).
				Background(ansiColor(core.Color(bg)))
		}
	}
	return t
}()

func ansiColor(c core.Color) lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(c.ANSI()))
}

func cellStyle(fg, bg core.Color) lipgloss.Style {
	if fg >= paletteSize {
		fg = core.ColorLightGray
	}
	if bg >= paletteSize {
		bg = core.ColorBlack
	}
	return cellStyles[fg][bg]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
