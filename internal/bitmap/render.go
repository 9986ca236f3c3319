package bitmap

import "strings"

// String renders the grid row-major: one letter per cell, rows joined by
// "\n", top row first, no trailing newline.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// Lines returns the rendered rows, top row first.
func (g *Grid) Lines() []string {
	lines := make([]string, len(g.cells))
	for r, row := range g.cells {
		var sb strings.Builder
		sb.Grow(len(row))
		for _, cell := range row {
			sb.WriteByte(byte(cell.colour))
		}
		lines[r] = sb.String()
	}
	return lines
}
