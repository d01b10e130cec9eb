package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bloop/internal/core"
)

// colorPair is a foreground and background color.
type colorPair struct {
	fg, bg core.Color
}

// styleCache maps color pairs to lipgloss styles, built on first use.
var (
	styleMu    sync.Mutex
	styleCache = map[colorPair]lipgloss.Style{
		{}: lipgloss.NewStyle(),
	}
)

// styleFor returns the style for a cell's colors. Default colors leave the
// terminal's own color in place.
func styleFor(fg, bg core.Color) lipgloss.Style {
	styleMu.Lock()
	defer styleMu.Unlock()

	key := colorPair{fg, bg}
	if s, ok := styleCache[key]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if !fg.IsDefault() {
		s = s.Foreground(lipgloss.Color(fg.Hex()))
	}
	if !bg.IsDefault() {
		s = s.Background(lipgloss.Color(bg.Hex()))
	}
	styleCache[key] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Background != start.Background {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start.Color, start.Background).Render(run.String()))
		}
	}
	return sb.String()
}
