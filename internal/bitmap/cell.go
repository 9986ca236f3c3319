// Package bitmap provides the grid engine of the editor: a fixed-size,
// 1-based grid of single-letter coloured cells with validated mutations,
// axis-aligned range painting and flood fill.
// This package is UI-agnostic and deterministic.
package bitmap

import "fmt"

// Colour is a single uppercase ASCII letter.
type Colour byte

// DefaultColour is the colour of every freshly built cell.
const DefaultColour Colour = 'O'

// Valid reports whether c is in A-Z.
func (c Colour) Valid() bool {
	return c >= 'A' && c <= 'Z'
}

// String returns the one-letter form of the colour.
func (c Colour) String() string {
	return string(rune(c))
}

// ParseColour converts a token to a Colour.
// Only exactly one uppercase ASCII letter is accepted.
func ParseColour(s string) (Colour, error) {
	if len(s) != 1 || !Colour(s[0]).Valid() {
		return 0, fmt.Errorf("%w, got %q", ErrInvalidColour, s)
	}
	return Colour(s[0]), nil
}

// Cell represents a single cell in the grid.
type Cell struct {
	colour Colour
}

// NewCell returns a cell with the default colour.
func NewCell() Cell {
	return Cell{colour: DefaultColour}
}

// CellOf returns a cell with the given colour.
// Invalid colours fall back to the default.
func CellOf(c Colour) Cell {
	if !c.Valid() {
		return NewCell()
	}
	return Cell{colour: c}
}

// Colour returns the cell's colour.
func (c Cell) Colour() Colour {
	return c.colour
}

// Set changes the colour. The cell is left untouched on error.
func (c *Cell) Set(colour string) error {
	parsed, err := ParseColour(colour)
	if err != nil {
		return err
	}
	c.colour = parsed
	return nil
}

// SameColour reports whether both cells hold the same colour.
func (c Cell) SameColour(other Cell) bool {
	return c.colour == other.colour
}

// String returns the single-letter rendering of the cell.
func (c Cell) String() string {
	return c.colour.String()
}
