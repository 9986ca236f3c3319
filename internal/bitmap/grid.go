package bitmap

import "fmt"

// Grid is a fixed-size image of coloured cells.
// Cells are addressed by 1-based (row, col); rows run top to bottom.
type Grid struct {
	width  int
	height int
	cells  [][]Cell // cells[row-1][col-1]
}

// Build allocates a height x width grid with every cell set to DefaultColour.
// Dimension limits are the caller's concern; negative sizes become 0.
func Build(width, height int) *Grid {
	width = max(width, 0)
	height = max(height, 0)

	g := &Grid{
		width:  width,
		height: height,
		cells:  make([][]Cell, height),
	}
	for r := range g.cells {
		row := make([]Cell, width)
		for c := range row {
			row[c] = NewCell()
		}
		g.cells[r] = row
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Get is a raw lookup into the store. It reports false instead of failing
// when row or col falls outside the allocated cells.
func (g *Grid) Get(row, col int) (Cell, bool) {
	p, ok := g.cell(row, col)
	if !ok {
		return Cell{}, false
	}
	return *p, true
}

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 1 && row <= g.height && col >= 1 && col <= g.width
}

// SetColour paints a single cell.
func (g *Grid) SetColour(row, col int, colour string) error {
	p, err := g.lookup(row, col)
	if err != nil {
		return err
	}
	return p.Set(colour)
}

// SetVerticalRange paints column col from rows.Start to rows.End inclusive.
func (g *Grid) SetVerticalRange(col int, rows Range, colour string) error {
	if err := rows.validate(g.height); err != nil {
		return err
	}
	if _, err := ParseColour(colour); err != nil {
		return err
	}
	for row := rows.Start; row <= rows.End; row++ {
		if err := g.SetColour(row, col, colour); err != nil {
			return err
		}
	}
	return nil
}

// SetHorizontalRange paints row from cols.Start to cols.End inclusive.
func (g *Grid) SetHorizontalRange(cols Range, row int, colour string) error {
	if err := cols.validate(g.width); err != nil {
		return err
	}
	if _, err := ParseColour(colour); err != nil {
		return err
	}
	for col := cols.Start; col <= cols.End; col++ {
		if err := g.SetColour(row, col, colour); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		width:  g.width,
		height: g.height,
		cells:  make([][]Cell, len(g.cells)),
	}
	for r, row := range g.cells {
		clone.cells[r] = append([]Cell(nil), row...)
	}
	return clone
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for r, row := range g.cells {
		for c, cell := range row {
			if cell != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// CountByColour returns how many cells hold each colour.
func (g *Grid) CountByColour() map[Colour]int {
	counts := make(map[Colour]int)
	for _, row := range g.cells {
		for _, cell := range row {
			counts[cell.colour]++
		}
	}
	return counts
}

// lookup validates (row, col) and returns the stored cell.
func (g *Grid) lookup(row, col int) (*Cell, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("%w: X(%d), Y(%d) should be between 1,1 and %d,%d",
			ErrOutOfBounds, col, row, g.width, g.height)
	}
	p, ok := g.cell(row, col)
	if !ok {
		return nil, fmt.Errorf("%w at X(%d), Y(%d)", ErrCellNotFound, col, row)
	}
	return p, nil
}

// cell returns a pointer into the store, or false if the index is not allocated.
func (g *Grid) cell(row, col int) (*Cell, bool) {
	if row < 1 || row > len(g.cells) {
		return nil, false
	}
	cells := g.cells[row-1]
	if col < 1 || col > len(cells) {
		return nil, false
	}
	return &cells[col-1], true
}
