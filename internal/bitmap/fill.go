package bitmap

// point is a 1-based grid position.
type point struct {
	row int
	col int
}

// neighbourOffsets lists the 4-connected neighbours in visiting order:
// up, right, down, left.
var neighbourOffsets = [4]point{
	{row: -1, col: 0},
	{row: 0, col: 1},
	{row: 1, col: 0},
	{row: 0, col: -1},
}

// Fill recolours the 4-connected region of cells that share the seed's
// original colour. Filling with the seed's own colour is a no-op.
//
// The traversal uses an explicit stack. Every cell is compared against the
// seed colour captured before the first mutation.
func (g *Grid) Fill(row, col int, colour string) error {
	seed, err := g.lookup(row, col)
	if err != nil {
		return err
	}
	replacement, err := ParseColour(colour)
	if err != nil {
		return err
	}

	target := *seed
	if target.colour == replacement {
		return nil
	}

	stack := []point{{row: row, col: col}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell, ok := g.cell(p.row, p.col)
		if !ok || !cell.SameColour(target) {
			continue
		}
		cell.colour = replacement

		// Push in reverse so neighbours pop in up, right, down, left order.
		for i := len(neighbourOffsets) - 1; i >= 0; i-- {
			n := point{row: p.row + neighbourOffsets[i].row, col: p.col + neighbourOffsets[i].col}
			if g.InBounds(n.row, n.col) {
				stack = append(stack, n)
			}
		}
	}
	return nil
}
