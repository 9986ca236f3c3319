package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bitmap/internal/bitmap"
)

// Palette maps colour letters to lipgloss styles.
// Letters without an entry render unstyled.
type Palette map[bitmap.Colour]lipgloss.Style

// NewPalette builds a palette from letter -> colour strings (ANSI codes or
// hex values). Keys that are not colour letters are skipped.
func NewPalette(r *lipgloss.Renderer, colours map[string]string) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := make(Palette, len(colours))
	for letter, c := range colours {
		colour, err := bitmap.ParseColour(letter)
		if err != nil {
			continue
		}
		p[colour] = r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return p
}

// RenderGrid converts a grid to a styled string for display.
// Groups adjacent cells with the same colour to minimize ANSI escape sequences.
func RenderGrid(g *bitmap.Grid, p Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(g.Width()*g.Height()*2 + g.Height())

	for row := 1; row <= g.Height(); row++ {
		if row > 1 {
			sb.WriteRune('\n')
		}

		col := 1
		for col <= g.Width() {
			cell, _ := g.Get(row, col)
			start := cell.Colour()

			var run strings.Builder
			for col <= g.Width() {
				cell, _ = g.Get(row, col)
				if cell.Colour() != start {
					break
				}
				run.WriteString(cell.String())
				col++
			}

			style, ok := p[start]
			if !ok {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
